package stats

import "github.com/tienvillalobos/maxxavelada-backend/internal/metrics"

// Engine derives statistics from the stored match history. It keeps no state
// of its own: every query folds the history from scratch, so results always
// reflect the current store.
type Engine struct {
	source  MatchSource
	metrics metrics.Metrics
}

// PlayerStat is the derived win/loss record for a single player.
type PlayerStat struct {
	Name       string  `json:"name"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	TotalGames int     `json:"total_games"`
	WinRate    float64 `json:"win_rate"`
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	TotalGames int     `json:"total_games"`
	WinRate    float64 `json:"win_rate"`
	WinRatePct float64 `json:"win_rate_pct"`
}

// Summary reports totals across the whole history.
type Summary struct {
	TotalMatches int `json:"total_matches"`
}
