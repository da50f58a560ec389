package dto

import (
	"time"

	"github.com/playtype/typing-game-service/internal/typing/domain"
)

type AttemptInput struct {
	SessionID   int64  `json:"session_id"`
	Sentence    string `json:"sentence"`
	UserInput   string `json:"user_input"`
	IsCorrect   bool   `json:"is_correct"`
	TimeTakenMs int64  `json:"time_taken"`
}

type AttemptOutput struct {
	ID          int64     `json:"id"`
	SessionID   int64     `json:"session_id"`
	Sentence    string    `json:"sentence"`
	UserInput   string    `json:"user_input"`
	IsCorrect   bool      `json:"is_correct"`
	TimeTakenMs int64     `json:"time_taken"`
	CreatedAt   time.Time `json:"created_at"`
}

func AttemptOutputFrom(a *domain.SentenceAttempt) AttemptOutput {
	return AttemptOutput{
		ID:          a.ID,
		SessionID:   a.SessionID,
		Sentence:    a.Sentence,
		UserInput:   a.UserInput,
		IsCorrect:   a.IsCorrect,
		TimeTakenMs: a.TimeTakenMs,
		CreatedAt:   a.CreatedAt,
	}
}
