package domain

import "time"

type User struct {
	ID           int64
	Username     string
	Email        *string
	PasswordHash string
	CreatedAt    time.Time
}

type GameSession struct {
	ID                 int64
	UserID             *int64
	Score              int
	TimeLeft           int
	SentencesCompleted int
	Accuracy           float64
	WPM                float64
	CreatedAt          time.Time
}

type SentenceAttempt struct {
	ID          int64
	SessionID   int64
	Sentence    string
	UserInput   string
	IsCorrect   bool
	TimeTakenMs int64
	CreatedAt   time.Time
}

// UserStats aggregates a single user's game_sessions rows. The averages and
// maxima are nil when the user has no sessions; callers must render them as
// zero or null, never treat them as an error.
type UserStats struct {
	TotalSessions  int
	AvgScore       *float64
	BestScore      *int
	AvgWPM         *float64
	BestWPM        *float64
	AvgAccuracy    *float64
	TotalSentences *int
}

// LeaderboardEntry is one row of the top-scores view. Aggregates are nil for
// users that have never played; those rows sort after every scored row.
type LeaderboardEntry struct {
	Username       string
	BestScore      *int
	AvgWPM         *float64
	SessionsPlayed int
}
