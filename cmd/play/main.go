package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/playtype/typing-game-service/internal/apiclient"
	"github.com/playtype/typing-game-service/internal/game"
	"github.com/playtype/typing-game-service/internal/tui"
)

func main() {
	baseURL := os.Getenv("GAME_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}

	// The terminal owns stdout; persistence failures go to a log file so
	// they stay operator-visible without corrupting the UI.
	logOut, err := os.OpenFile("typing-game.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logOut.Close()
	logger := zerolog.New(logOut).With().Timestamp().Logger()

	client := apiclient.NewClient(baseURL)
	recorder := apiclient.NewRecorder(client, logger)
	engine := game.NewEngine(recorder, nil, nil, logger)

	p := tea.NewProgram(tui.NewModel(client, engine, logger))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
