// Package tui provides the Bubble Tea front end that hosts the game engine.
// The countdown is a chain of one-shot tea.Tick commands tagged with a run
// id; bumping the id on any exit from the running state strands the pending
// callback, so at most one live chain exists per game.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/playtype/typing-game-service/internal/apiclient"
	"github.com/playtype/typing-game-service/internal/game"
	"github.com/playtype/typing-game-service/internal/typing/dto"
)

type screen int

const (
	screenAuth screen = iota
	screenGame
	screenLeaderboard
)

type tickMsg struct {
	run int
}

type authResultMsg struct {
	user *dto.UserOutput
	err  error
}

type statsMsg struct {
	stats *dto.StatsOutput
	err   error
}

type leaderboardMsg struct {
	rows []dto.LeaderboardRow
	err  error
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	sentenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	timerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model owns the engine and every piece of client state; nothing lives in
// package globals.
type Model struct {
	client *apiclient.Client
	engine *game.Engine
	logger zerolog.Logger

	screen screen

	usernameInput textinput.Model
	passwordInput textinput.Model
	authFocus     int
	registering   bool
	authPending   bool
	authErr       string

	typedInput textinput.Model

	run         int
	stats       *dto.StatsOutput
	leaderboard []dto.LeaderboardRow
	loadErr     string
}

func NewModel(client *apiclient.Client, engine *game.Engine, logger zerolog.Logger) *Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 64

	typed := textinput.New()
	typed.Placeholder = "Type here..."
	typed.CharLimit = 256

	return &Model{
		client:        client,
		engine:        engine,
		logger:        logger,
		screen:        screenAuth,
		usernameInput: username,
		passwordInput: password,
		typedInput:    typed,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func tickCmd(run int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{run: run}
	})
}

func (m *Model) authCmd(username, password string, register bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			user *dto.UserOutput
			err  error
		)
		if register {
			user, err = m.client.CreateUser(ctx, username, password, nil)
		} else {
			user, err = m.client.Login(ctx, username, password)
		}
		return authResultMsg{user: user, err: err}
	}
}

func (m *Model) statsCmd(userID int64) tea.Cmd {
	return func() tea.Msg {
		stats, err := m.client.UserStats(context.Background(), userID)
		return statsMsg{stats: stats, err: err}
	}
}

func (m *Model) leaderboardCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.client.Leaderboard(context.Background())
		return leaderboardMsg{rows: rows, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// A tick from a superseded run is a cancelled callback.
		if msg.run != m.run {
			return m, nil
		}
		if m.engine.Tick(context.Background()) {
			return m, tickCmd(m.run)
		}
		// The chain ends here; retire the run id so any straggler is inert.
		m.run++
		if m.engine.State() == game.StateGameOver {
			m.stats = nil
			return m, m.statsCmd(m.engine.Account().ID)
		}
		return m, nil

	case authResultMsg:
		m.authPending = false
		if msg.err != nil {
			m.authErr = msg.err.Error()
			return m, nil
		}
		m.authErr = ""
		m.engine.SetAccount(msg.user.ID, msg.user.Username)
		m.screen = screenGame
		return m, nil

	case statsMsg:
		if msg.err != nil {
			// Stats are a post-game nicety; a failed fetch only logs.
			m.logger.Warn().Err(msg.err).Msg("failed to load stats")
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case leaderboardMsg:
		if msg.err != nil {
			m.loadErr = "Failed to load leaderboard"
			m.logger.Warn().Err(msg.err).Msg("failed to load leaderboard")
			return m, nil
		}
		m.loadErr = ""
		m.leaderboard = msg.rows
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenAuth:
			return m.updateAuth(msg)
		case screenLeaderboard:
			return m.updateLeaderboard(msg)
		default:
			return m.updateGame(msg)
		}
	}

	return m, nil
}

func (m *Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		m.authFocus = 1 - m.authFocus
		if m.authFocus == 0 {
			m.usernameInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.usernameInput.Blur()
			m.passwordInput.Focus()
		}
		return m, nil
	case tea.KeyCtrlR:
		m.registering = !m.registering
		m.authErr = ""
		return m, nil
	case tea.KeyEnter:
		if m.authPending {
			return m, nil
		}
		m.authPending = true
		m.authErr = ""
		return m, m.authCmd(m.usernameInput.Value(), m.passwordInput.Value(), m.registering)
	}

	var cmd tea.Cmd
	if m.authFocus == 0 {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.engine.State() {
	case game.StateIdle:
		switch msg.Type {
		case tea.KeyEnter:
			m.engine.Start(context.Background())
			if m.engine.State() != game.StateRunning {
				return m, nil
			}
			m.typedInput.Reset()
			m.typedInput.Focus()
			m.run++
			return m, tickCmd(m.run)
		case tea.KeyCtrlL:
			m.screen = screenLeaderboard
			m.leaderboard = nil
			return m, m.leaderboardCmd()
		case tea.KeyCtrlD:
			m.logout()
			return m, nil
		}

	case game.StateRunning:
		if msg.Type == tea.KeyCtrlD {
			m.logout()
			return m, nil
		}
		var cmd tea.Cmd
		m.typedInput, cmd = m.typedInput.Update(msg)
		m.engine.Type(context.Background(), m.typedInput.Value())
		if m.engine.Input() == "" && m.typedInput.Value() != "" {
			// The engine consumed a completed sentence.
			m.typedInput.Reset()
		}
		return m, cmd

	case game.StateGameOver:
		switch msg.Type {
		case tea.KeyEnter:
			m.engine.PlayAgain()
			m.stats = nil
			return m, nil
		case tea.KeyCtrlL:
			m.screen = screenLeaderboard
			m.leaderboard = nil
			return m, m.leaderboardCmd()
		case tea.KeyCtrlD:
			m.logout()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) updateLeaderboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.screen = screenGame
		return m, nil
	}
	return m, nil
}

func (m *Model) logout() {
	// Bumping the run id strands any pending countdown callback.
	m.run++
	m.engine.Logout()
	m.screen = screenAuth
	m.stats = nil
	m.usernameInput.Reset()
	m.passwordInput.Reset()
	m.usernameInput.Focus()
	m.passwordInput.Blur()
	m.authFocus = 0
	m.authErr = ""
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Affirmation Typing"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenAuth:
		m.viewAuth(&b)
	case screenLeaderboard:
		m.viewLeaderboard(&b)
	default:
		m.viewGame(&b)
	}

	return b.String()
}

func (m *Model) viewAuth(b *strings.Builder) {
	mode := "Log in"
	if m.registering {
		mode = "Register"
	}
	b.WriteString(mode + "\n\n")
	b.WriteString(m.usernameInput.View() + "\n")
	b.WriteString(m.passwordInput.View() + "\n\n")
	if m.authPending {
		b.WriteString(faintStyle.Render("...") + "\n")
	}
	if m.authErr != "" {
		b.WriteString(errorStyle.Render(m.authErr) + "\n")
	}
	b.WriteString(faintStyle.Render("enter submit · tab switch field · ctrl+r toggle register · ctrl+c quit"))
}

func (m *Model) viewGame(b *strings.Builder) {
	account := m.engine.Account()
	if account != nil {
		b.WriteString(faintStyle.Render("Signed in as "+account.Username) + "\n\n")
	}

	switch m.engine.State() {
	case game.StateIdle:
		b.WriteString("Press enter to begin.\n\n")
		b.WriteString(faintStyle.Render("enter start · ctrl+l leaderboard · ctrl+d log out"))

	case game.StateRunning:
		b.WriteString(timerStyle.Render(fmt.Sprintf("Time Left: %d", m.engine.TimeLeft())) + "\n\n")
		b.WriteString(sentenceStyle.Render(m.engine.Sentence()) + "\n\n")
		b.WriteString(m.typedInput.View() + "\n\n")
		b.WriteString(faintStyle.Render(fmt.Sprintf("Score: %d", m.engine.Score())))

	case game.StateGameOver:
		b.WriteString("Try again.\n")
		b.WriteString(fmt.Sprintf("Your Score: %d\n\n", m.engine.Score()))
		if m.stats != nil {
			b.WriteString(fmt.Sprintf("Sessions played: %d\n", m.stats.TotalSessions))
			if m.stats.BestScore != nil {
				b.WriteString(fmt.Sprintf("Best score: %d\n", *m.stats.BestScore))
			}
			if m.stats.AvgWPM != nil {
				b.WriteString(fmt.Sprintf("Average WPM: %.0f\n", *m.stats.AvgWPM))
			}
		}
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("enter play again · ctrl+l leaderboard · ctrl+d log out"))
	}
}

func (m *Model) viewLeaderboard(b *strings.Builder) {
	b.WriteString("Leaderboard\n\n")
	if m.loadErr != "" {
		b.WriteString(errorStyle.Render(m.loadErr) + "\n")
	} else if m.leaderboard == nil {
		b.WriteString(faintStyle.Render("Loading...") + "\n")
	} else if len(m.leaderboard) == 0 {
		b.WriteString(faintStyle.Render("Nobody has played yet.") + "\n")
	} else {
		for i, row := range m.leaderboard {
			best := 0
			if row.BestScore != nil {
				best = *row.BestScore
			}
			wpm := 0.0
			if row.AvgWPM != nil {
				wpm = *row.AvgWPM
			}
			b.WriteString(fmt.Sprintf("#%-2d %-20s best %3d · %3.0f wpm · %d games\n",
				i+1, row.Username, best, wpm, row.SessionsPlayed))
		}
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("esc back"))
}
