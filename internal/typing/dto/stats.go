package dto

import (
	"github.com/playtype/typing-game-service/internal/typing/domain"
)

// StatsOutput mirrors the aggregate row shape. Nullable aggregates serialize
// as JSON null when the user has no sessions yet.
type StatsOutput struct {
	TotalSessions  int      `json:"total_sessions"`
	AvgScore       *float64 `json:"avg_score"`
	BestScore      *int     `json:"best_score"`
	AvgWPM         *float64 `json:"avg_wpm"`
	BestWPM        *float64 `json:"best_wpm"`
	AvgAccuracy    *float64 `json:"avg_accuracy"`
	TotalSentences *int     `json:"total_sentences"`
}

type LeaderboardRow struct {
	Username       string   `json:"username"`
	BestScore      *int     `json:"best_score"`
	AvgWPM         *float64 `json:"avg_wpm"`
	SessionsPlayed int      `json:"sessions_played"`
}

func StatsOutputFrom(s *domain.UserStats) StatsOutput {
	return StatsOutput{
		TotalSessions:  s.TotalSessions,
		AvgScore:       s.AvgScore,
		BestScore:      s.BestScore,
		AvgWPM:         s.AvgWPM,
		BestWPM:        s.BestWPM,
		AvgAccuracy:    s.AvgAccuracy,
		TotalSentences: s.TotalSentences,
	}
}

func LeaderboardRowFrom(e domain.LeaderboardEntry) LeaderboardRow {
	return LeaderboardRow{
		Username:       e.Username,
		BestScore:      e.BestScore,
		AvgWPM:         e.AvgWPM,
		SessionsPlayed: e.SessionsPlayed,
	}
}
