// Package game implements the typing-game session state machine: sentence
// selection, input matching, the countdown, completion detection and the
// persistence triggers around them. The engine itself is synchronous and free
// of I/O; a driver owns the timer that calls Tick and a Recorder receives the
// persistence events.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// StartTime is the countdown length of one game, in seconds.
const StartTime = 60

type State int

const (
	StateUnauthenticated State = iota
	StateIdle
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Account is the identity retained after login for the rest of the process
// lifetime. There is no token renewal; the id is trusted client-side.
type Account struct {
	ID       int64
	Username string
}

// Attempt is one successfully matched sentence.
type Attempt struct {
	SessionID   int64
	Sentence    string
	UserInput   string
	IsCorrect   bool
	TimeTakenMs int64
}

// Result is the terminal snapshot of a finished game.
type Result struct {
	Score              int
	TimeLeft           int
	SentencesCompleted int
	Accuracy           float64
	WPM                float64
}

// Recorder receives persistence events from the engine. Every call is
// best-effort: the engine logs failures and carries on, it never blocks or
// rewinds the state machine on a backend error.
type Recorder interface {
	// StartSession creates a zeroed session row and returns its id, which
	// tags the attempts logged during the game.
	StartSession(ctx context.Context, userID int64) (int64, error)
	RecordAttempt(ctx context.Context, attempt Attempt) error
	FinishSession(ctx context.Context, userID int64, result Result) error
}

// Engine is the game-session state machine. It is not safe for concurrent
// use; drive it from a single goroutine, the way a UI event loop does.
type Engine struct {
	recorder  Recorder
	clock     clockwork.Clock
	rng       *rand.Rand
	logger    zerolog.Logger
	sentences []string

	state              State
	account            *Account
	sentence           string
	input              string
	score              int
	sentencesCompleted int
	timeLeft           int
	sessionID          int64
	startedAt          time.Time
}

func NewEngine(recorder Recorder, clock clockwork.Clock, rng *rand.Rand, logger zerolog.Logger) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		recorder:  recorder,
		clock:     clock,
		rng:       rng,
		logger:    logger,
		sentences: Sentences,
		state:     StateUnauthenticated,
		timeLeft:  StartTime,
	}
}

func (e *Engine) State() State       { return e.state }
func (e *Engine) Account() *Account  { return e.account }
func (e *Engine) Sentence() string   { return e.sentence }
func (e *Engine) Input() string      { return e.input }
func (e *Engine) Score() int         { return e.score }
func (e *Engine) TimeLeft() int      { return e.timeLeft }
func (e *Engine) SessionID() int64   { return e.sessionID }
func (e *Engine) SentencesDone() int { return e.sentencesCompleted }

// SetAccount transitions Unauthenticated -> Idle after a successful
// registration or login.
func (e *Engine) SetAccount(id int64, username string) {
	if e.state != StateUnauthenticated {
		return
	}
	e.account = &Account{ID: id, Username: username}
	e.state = StateIdle
}

// Logout clears the account and all in-progress game state from any state.
func (e *Engine) Logout() {
	e.account = nil
	e.resetGame()
	e.state = StateUnauthenticated
}

// Start transitions Idle -> Running: draws a sentence, arms the countdown
// state and creates the zeroed session row whose id tags the attempts.
func (e *Engine) Start(ctx context.Context) {
	if e.state != StateIdle || e.account == nil {
		return
	}

	e.resetGame()
	e.drawSentence()
	e.startedAt = e.clock.Now()
	e.state = StateRunning

	id, err := e.recorder.StartSession(ctx, e.account.ID)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to create game session")
		return
	}
	e.sessionID = id
}

// Tick decrements the countdown by one unit. It reports whether the driver
// may arm another tick: false once the game is over or not running, so no
// decrement can ever land after the Running -> GameOver transition.
func (e *Engine) Tick(ctx context.Context) bool {
	if e.state != StateRunning {
		return false
	}

	e.timeLeft--
	if e.timeLeft > 0 {
		return true
	}

	e.timeLeft = 0
	e.finish(ctx)
	return false
}

// Type replaces the input buffer with the current contents of the input
// field. A buffer that equals the target sentence character-for-character is
// a completion; anything else, including near-misses, just sits in the
// buffer.
func (e *Engine) Type(ctx context.Context, text string) {
	if e.state != StateRunning {
		return
	}

	e.input = text
	if e.input != e.sentence {
		return
	}

	e.score++
	e.sentencesCompleted++
	elapsed := e.clock.Since(e.startedAt).Milliseconds()

	attempt := Attempt{
		SessionID:   e.sessionID,
		Sentence:    e.sentence,
		UserInput:   e.input,
		IsCorrect:   true,
		TimeTakenMs: elapsed,
	}
	if err := e.recorder.RecordAttempt(ctx, attempt); err != nil {
		e.logger.Warn().Err(err).Msg("failed to record sentence attempt")
	}

	e.input = ""
	e.drawSentence()
}

// PlayAgain transitions GameOver -> Idle without logging out.
func (e *Engine) PlayAgain() {
	if e.state != StateGameOver {
		return
	}
	e.resetGame()
	e.state = StateIdle
}

func (e *Engine) finish(ctx context.Context) {
	result := Result{
		Score:              e.score,
		TimeLeft:           e.timeLeft,
		SentencesCompleted: e.sentencesCompleted,
		Accuracy:           0,
		WPM:                0,
	}
	if e.sentencesCompleted > 0 {
		// timeLeft is 0 whenever the countdown ends, so this works out to
		// the sentence count. The remaining-time form is kept so new rows
		// stay comparable with what is already stored.
		result.WPM = float64(e.sentencesCompleted*60) / float64(60-e.timeLeft)
		result.Accuracy = 100
	}

	e.state = StateGameOver

	if err := e.recorder.FinishSession(ctx, e.account.ID, result); err != nil {
		e.logger.Warn().Err(err).Msg("failed to save game session")
	}
}

func (e *Engine) drawSentence() {
	// Uniform draw with replacement; the same sentence may recur
	// back-to-back.
	e.sentence = e.sentences[e.rng.Intn(len(e.sentences))]
}

func (e *Engine) resetGame() {
	e.sentence = ""
	e.input = ""
	e.score = 0
	e.sentencesCompleted = 0
	e.timeLeft = StartTime
	e.sessionID = 0
	e.startedAt = time.Time{}
}
