package service

import (
	"context"

	"github.com/playtype/typing-game-service/internal/typing/domain"
	"github.com/playtype/typing-game-service/internal/typing/dto"
)

type GameService struct {
	repo            domain.GameRepository
	leaderboardSize int
}

func NewGameService(repo domain.GameRepository, leaderboardSize int) *GameService {
	if leaderboardSize <= 0 {
		leaderboardSize = 10
	}
	return &GameService{
		repo:            repo,
		leaderboardSize: leaderboardSize,
	}
}

// CreateSession inserts the row as-is. Field ranges are deliberately not
// validated; a session row is a record of what the client reported.
func (s *GameService) CreateSession(ctx context.Context, input dto.SessionInput) (*domain.GameSession, error) {
	session := &domain.GameSession{
		UserID:             input.UserID,
		Score:              input.Score,
		TimeLeft:           input.TimeLeft,
		SentencesCompleted: input.SentencesCompleted,
		Accuracy:           input.Accuracy,
		WPM:                input.WPM,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *GameService) SessionsByUser(ctx context.Context, userID int64) ([]domain.GameSession, error) {
	return s.repo.SessionsByUser(ctx, userID)
}

func (s *GameService) RecordAttempt(ctx context.Context, input dto.AttemptInput) (*domain.SentenceAttempt, error) {
	attempt := &domain.SentenceAttempt{
		SessionID:   input.SessionID,
		Sentence:    input.Sentence,
		UserInput:   input.UserInput,
		IsCorrect:   input.IsCorrect,
		TimeTakenMs: input.TimeTakenMs,
	}

	if err := s.repo.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	return attempt, nil
}

func (s *GameService) UserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	return s.repo.UserStats(ctx, userID)
}

func (s *GameService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.repo.Leaderboard(ctx, s.leaderboardSize)
}
