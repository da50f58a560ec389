package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtype/typing-game-service/internal/typing/domain"
	repo "github.com/playtype/typing-game-service/internal/typing/repository/postgres"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

// TestGetByUsername covers the GetByUsername repository method.
func TestGetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		email := "alice@example.com"
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(1), "alice", &email, "hash", time.Now()))

		user, err := r.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByUsername(ctx, "nobody")
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByUsername(ctx, "alice")
		assert.Error(t, err)
	})
}

// TestGetByID covers the GetByID repository method.
func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(1), "alice", (*string)(nil), "hash", time.Now()))

		user, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Nil(t, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

// TestCreateUser covers the Create repository method.
func TestCreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user := &domain.User{Username: "alice", PasswordHash: "hash"}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(1), time.Now()))

		err := r.Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("database error", func(t *testing.T) {
		user := &domain.User{Username: "alice", PasswordHash: "hash"}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

// TestListUsersQuery covers the List repository method.
func TestListUsersQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows(userColumns).
			AddRow(int64(2), "bob", (*string)(nil), "hash", now).
			AddRow(int64(1), "alice", (*string)(nil), "hash", now.Add(-time.Hour))

		mock.ExpectQuery("SELECT id, username").WillReturnRows(rows)

		users, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "bob", users[0].Username)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WillReturnError(fmt.Errorf("db error"))

		users, err := r.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

// TestCreateSessionQuery covers the CreateSession repository method.
func TestCreateSessionQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()
	userID := int64(7)

	t.Run("success", func(t *testing.T) {
		session := &domain.GameSession{
			UserID:             &userID,
			Score:              3,
			TimeLeft:           0,
			SentencesCompleted: 3,
			Accuracy:           100,
			WPM:                3,
		}
		mock.ExpectQuery("INSERT INTO game_sessions").
			WithArgs(session.UserID, session.Score, session.TimeLeft,
				session.SentencesCompleted, session.Accuracy, session.WPM).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(42), time.Now()))

		err := r.CreateSession(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, int64(42), session.ID)
	})

	t.Run("anonymous session", func(t *testing.T) {
		session := &domain.GameSession{UserID: nil}
		mock.ExpectQuery("INSERT INTO game_sessions").
			WithArgs(session.UserID, 0, 0, 0, float64(0), float64(0)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(43), time.Now()))

		err := r.CreateSession(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, int64(43), session.ID)
	})

	t.Run("database error", func(t *testing.T) {
		session := &domain.GameSession{UserID: &userID}
		mock.ExpectQuery("INSERT INTO game_sessions").
			WithArgs(session.UserID, 0, 0, 0, float64(0), float64(0)).
			WillReturnError(fmt.Errorf("db error"))

		err := r.CreateSession(ctx, session)
		assert.Error(t, err)
	})
}

// TestSessionsByUser covers the SessionsByUser repository method.
func TestSessionsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "user_id", "score", "time_left", "sentences_completed", "accuracy", "wpm", "created_at"}
	userID := int64(7)

	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(int64(2), &userID, 5, 0, 5, float64(100), float64(5), time.Now()).
			AddRow(int64(1), &userID, 3, 0, 3, float64(100), float64(3), time.Now())

		mock.ExpectQuery("SELECT id, user_id").
			WithArgs(userID).
			WillReturnRows(rows)

		sessions, err := r.SessionsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, int64(2), sessions[0].ID)
		assert.Equal(t, 5, sessions[0].Score)
	})

	t.Run("no sessions", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(columns))

		sessions, err := r.SessionsByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}

// TestCreateAttemptQuery covers the CreateAttempt repository method.
func TestCreateAttemptQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		attempt := &domain.SentenceAttempt{
			SessionID:   42,
			Sentence:    "Small steps add up.",
			UserInput:   "Small steps add up.",
			IsCorrect:   true,
			TimeTakenMs: 2500,
		}
		mock.ExpectQuery("INSERT INTO sentence_attempts").
			WithArgs(attempt.SessionID, attempt.Sentence, attempt.UserInput,
				attempt.IsCorrect, attempt.TimeTakenMs).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(1), time.Now()))

		err := r.CreateAttempt(ctx, attempt)
		require.NoError(t, err)
		assert.Equal(t, int64(1), attempt.ID)
	})

	t.Run("database error", func(t *testing.T) {
		attempt := &domain.SentenceAttempt{SessionID: 42}
		mock.ExpectQuery("INSERT INTO sentence_attempts").
			WithArgs(attempt.SessionID, "", "", false, int64(0)).
			WillReturnError(fmt.Errorf("db error"))

		err := r.CreateAttempt(ctx, attempt)
		assert.Error(t, err)
	})
}

// TestUserStatsQuery covers the UserStats repository method.
func TestUserStatsQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()
	columns := []string{"total_sessions", "avg_score", "best_score", "avg_wpm", "best_wpm", "avg_accuracy", "total_sentences"}

	t.Run("with sessions", func(t *testing.T) {
		avgScore, avgWPM, avgAccuracy := 4.0, 4.0, 100.0
		bestScore, totalSentences := 5, 8
		bestWPM := 5.0
		mock.ExpectQuery("SELECT").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(2, &avgScore, &bestScore, &avgWPM, &bestWPM, &avgAccuracy, &totalSentences))

		stats, err := r.UserStats(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalSessions)
		require.NotNil(t, stats.BestScore)
		assert.Equal(t, 5, *stats.BestScore)
	})

	t.Run("no sessions yields null aggregates", func(t *testing.T) {
		// COUNT(*) is 0 and every other aggregate is NULL.
		mock.ExpectQuery("SELECT").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(0, (*float64)(nil), (*int)(nil), (*float64)(nil), (*float64)(nil), (*float64)(nil), (*int)(nil)))

		stats, err := r.UserStats(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalSessions)
		assert.Nil(t, stats.BestScore)
		assert.Nil(t, stats.AvgWPM)
		assert.Nil(t, stats.TotalSentences)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(int64(7)).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.UserStats(ctx, 7)
		assert.Error(t, err)
	})
}

// TestLeaderboardQuery covers the Leaderboard repository method.
func TestLeaderboardQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()
	columns := []string{"username", "best_score", "avg_wpm", "sessions_played"}

	t.Run("success", func(t *testing.T) {
		ninety, thirty := 90, 30
		avgHigh, avgLow := 6.5, 2.0
		rows := pgxmock.NewRows(columns).
			AddRow("carol", &ninety, &avgHigh, 2).
			AddRow("bob", &thirty, &avgLow, 1).
			AddRow("dave", (*int)(nil), (*float64)(nil), 0)

		mock.ExpectQuery("SELECT").
			WithArgs(10).
			WillReturnRows(rows)

		entries, err := r.Leaderboard(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "carol", entries[0].Username)
		// Users who never played keep their spot with null aggregates.
		assert.Equal(t, "dave", entries[2].Username)
		assert.Nil(t, entries[2].BestScore)
		assert.Equal(t, 0, entries[2].SessionsPlayed)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(10).
			WillReturnError(fmt.Errorf("db error"))

		entries, err := r.Leaderboard(ctx, 10)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
