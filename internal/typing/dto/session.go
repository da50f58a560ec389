package dto

import (
	"time"

	"github.com/playtype/typing-game-service/internal/typing/domain"
)

type SessionInput struct {
	UserID             *int64  `json:"user_id"`
	Score              int     `json:"score"`
	TimeLeft           int     `json:"time_left"`
	SentencesCompleted int     `json:"sentences_completed"`
	Accuracy           float64 `json:"accuracy"`
	WPM                float64 `json:"wpm"`
}

type SessionOutput struct {
	ID                 int64     `json:"id"`
	UserID             *int64    `json:"user_id"`
	Score              int       `json:"score"`
	TimeLeft           int       `json:"time_left"`
	SentencesCompleted int       `json:"sentences_completed"`
	Accuracy           float64   `json:"accuracy"`
	WPM                float64   `json:"wpm"`
	CreatedAt          time.Time `json:"created_at"`
}

func SessionOutputFrom(s *domain.GameSession) SessionOutput {
	return SessionOutput{
		ID:                 s.ID,
		UserID:             s.UserID,
		Score:              s.Score,
		TimeLeft:           s.TimeLeft,
		SentencesCompleted: s.SentencesCompleted,
		Accuracy:           s.Accuracy,
		WPM:                s.WPM,
		CreatedAt:          s.CreatedAt,
	}
}
