package domain

import "context"

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
}

type GameRepository interface {
	CreateSession(ctx context.Context, session *GameSession) error
	SessionsByUser(ctx context.Context, userID int64) ([]GameSession, error)
	CreateAttempt(ctx context.Context, attempt *SentenceAttempt) error
	UserStats(ctx context.Context, userID int64) (*UserStats, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
