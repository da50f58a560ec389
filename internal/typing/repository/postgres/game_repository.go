package postgres

import (
	"context"
	"fmt"

	"github.com/playtype/typing-game-service/internal/typing/domain"
)

func (r *Repository) CreateSession(ctx context.Context, session *domain.GameSession) error {
	query := `
		INSERT INTO game_sessions (user_id, score, time_left, sentences_completed, accuracy, wpm)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	row := r.db.QueryRow(ctx, query,
		session.UserID, session.Score, session.TimeLeft,
		session.SentencesCompleted, session.Accuracy, session.WPM)

	if err := row.Scan(&session.ID, &session.CreatedAt); err != nil {
		return fmt.Errorf("failed to create game session: %w", err)
	}

	return nil
}

func (r *Repository) SessionsByUser(ctx context.Context, userID int64) ([]domain.GameSession, error) {
	query := `
		SELECT id, user_id, score, time_left, sentences_completed, accuracy, wpm, created_at
		FROM game_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.GameSession
	for rows.Next() {
		var s domain.GameSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Score, &s.TimeLeft,
			&s.SentencesCompleted, &s.Accuracy, &s.WPM, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

func (r *Repository) CreateAttempt(ctx context.Context, attempt *domain.SentenceAttempt) error {
	query := `
		INSERT INTO sentence_attempts (session_id, sentence, user_input, is_correct, time_taken)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	row := r.db.QueryRow(ctx, query,
		attempt.SessionID, attempt.Sentence, attempt.UserInput,
		attempt.IsCorrect, attempt.TimeTakenMs)

	if err := row.Scan(&attempt.ID, &attempt.CreatedAt); err != nil {
		return fmt.Errorf("failed to create sentence attempt: %w", err)
	}

	return nil
}

func (r *Repository) UserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_sessions,
			AVG(score) AS avg_score,
			MAX(score) AS best_score,
			AVG(wpm) AS avg_wpm,
			MAX(wpm) AS best_wpm,
			AVG(accuracy) AS avg_accuracy,
			SUM(sentences_completed) AS total_sentences
		FROM game_sessions
		WHERE user_id = $1;
	`
	row := r.db.QueryRow(ctx, query, userID)

	var stats domain.UserStats
	err := row.Scan(&stats.TotalSessions, &stats.AvgScore, &stats.BestScore,
		&stats.AvgWPM, &stats.BestWPM, &stats.AvgAccuracy, &stats.TotalSentences)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return &stats, nil
}

// Leaderboard returns the top accounts by best score. Users with no sessions
// are kept via the outer join; NULLS LAST puts their null best_score after
// every real score instead of Postgres' default of first on DESC.
func (r *Repository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT
			u.username,
			MAX(gs.score) AS best_score,
			AVG(gs.wpm) AS avg_wpm,
			COUNT(gs.id) AS sessions_played
		FROM users u
		LEFT JOIN game_sessions gs ON u.id = gs.user_id
		GROUP BY u.id, u.username
		ORDER BY best_score DESC NULLS LAST
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.BestScore, &e.AvgWPM, &e.SessionsPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}
