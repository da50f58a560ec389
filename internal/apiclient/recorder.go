package apiclient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/playtype/typing-game-service/internal/game"
	"github.com/playtype/typing-game-service/internal/typing/dto"
)

// Recorder adapts the REST client to the engine's persistence events.
//
// StartSession is synchronous because the game needs the session id before
// the first attempt. RecordAttempt and FinishSession are fire-and-forget:
// they return immediately and the HTTP call runs in its own goroutine, so a
// slow or dead backend never stalls play, and a new game can start while a
// previous save is still in flight. Failures go to the logger only.
type Recorder struct {
	client *Client
	logger zerolog.Logger
}

func NewRecorder(client *Client, logger zerolog.Logger) *Recorder {
	return &Recorder{client: client, logger: logger}
}

var _ game.Recorder = (*Recorder)(nil)

func (r *Recorder) StartSession(ctx context.Context, userID int64) (int64, error) {
	// The start row is zeroed apart from the untouched countdown; the scored
	// row arrives at game over.
	session, err := r.client.CreateSession(ctx, dto.SessionInput{
		UserID:   &userID,
		TimeLeft: game.StartTime,
	})
	if err != nil {
		return 0, err
	}
	return session.ID, nil
}

func (r *Recorder) RecordAttempt(ctx context.Context, attempt game.Attempt) error {
	go func() {
		_, err := r.client.SaveAttempt(context.WithoutCancel(ctx), dto.AttemptInput{
			SessionID:   attempt.SessionID,
			Sentence:    attempt.Sentence,
			UserInput:   attempt.UserInput,
			IsCorrect:   attempt.IsCorrect,
			TimeTakenMs: attempt.TimeTakenMs,
		})
		if err != nil {
			r.logger.Warn().Err(err).Int64("session_id", attempt.SessionID).
				Msg("failed to save sentence attempt")
		}
	}()
	return nil
}

func (r *Recorder) FinishSession(ctx context.Context, userID int64, result game.Result) error {
	go func() {
		_, err := r.client.CreateSession(context.WithoutCancel(ctx), dto.SessionInput{
			UserID:             &userID,
			Score:              result.Score,
			TimeLeft:           result.TimeLeft,
			SentencesCompleted: result.SentencesCompleted,
			Accuracy:           result.Accuracy,
			WPM:                result.WPM,
		})
		if err != nil {
			r.logger.Warn().Err(err).Int64("user_id", userID).
				Msg("failed to save game session")
		}
	}()
	return nil
}
