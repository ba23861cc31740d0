package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/metrics"
)

const (
	// DefaultLeaderboardLimit is used when a caller does not ask for a limit.
	DefaultLeaderboardLimit = 10
	// MaxLeaderboardLimit bounds leaderboard size.
	MaxLeaderboardLimit = 100
	// DefaultMinGames is the minimum games filter used when a caller does not
	// provide one.
	DefaultMinGames = 1
)

// New creates a new Engine reading from the given source.
func New(source MatchSource, m metrics.Metrics) *Engine {
	return &Engine{
		source:  source,
		metrics: m,
	}
}

// Leaderboard ranks players by wins (ties broken by total games, then name),
// keeps only players with at least minGames games, truncates to limit entries
// and assigns 1-based ranks. Out-of-range arguments are clamped, never
// rejected.
func (e *Engine) Leaderboard(limit, minGames int) ([]LeaderboardEntry, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	if minGames < 0 {
		minGames = 0
	}

	totals, err := e.fold()
	if err != nil {
		return nil, err
	}

	players := make([]*PlayerStat, 0, len(totals))
	for _, stat := range totals {
		if stat.TotalGames >= minGames {
			players = append(players, stat)
		}
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Wins != players[j].Wins {
			return players[i].Wins > players[j].Wins
		}
		if players[i].TotalGames != players[j].TotalGames {
			return players[i].TotalGames > players[j].TotalGames
		}
		return players[i].Name < players[j].Name
	})

	if len(players) > limit {
		players = players[:limit]
	}

	entries := make([]LeaderboardEntry, len(players))
	for i, stat := range players {
		rate := float64(stat.Wins) / float64(stat.TotalGames)
		entries[i] = LeaderboardEntry{
			Rank:       i + 1,
			Name:       stat.Name,
			Wins:       stat.Wins,
			Losses:     stat.Losses,
			TotalGames: stat.TotalGames,
			WinRate:    round2(rate),
			WinRatePct: round2(100 * rate),
		}
	}
	return entries, nil
}

// PlayerStats looks up a single player by exact match on the stored name.
// A player with no recorded games yields zeroed stats, not an error.
func (e *Engine) PlayerStats(name string) (PlayerStat, error) {
	totals, err := e.fold()
	if err != nil {
		return PlayerStat{}, err
	}

	stat, ok := totals[name]
	if !ok {
		return PlayerStat{Name: name}, nil
	}

	result := *stat
	result.WinRate = round2(float64(result.Wins) / float64(result.TotalGames))
	return result, nil
}

// Summary reports the total number of recorded matches.
func (e *Engine) Summary() (Summary, error) {
	total, err := e.source.Count()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count matches: %w", err)
	}
	return Summary{TotalMatches: total}, nil
}

// fold walks the full history and accumulates per-player totals. Each match
// contributes two observations, one per named player, so wins and losses
// always balance across the whole table. WinRate is left unrounded here;
// callers round at the presentation edge.
func (e *Engine) fold() (map[string]*PlayerStat, error) {
	startTime := time.Now()
	matches, err := e.source.GetAllMatches()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*PlayerStat)
	observe := func(name string, won bool) {
		stat, ok := totals[name]
		if !ok {
			stat = &PlayerStat{Name: name}
			totals[name] = stat
		}
		stat.TotalGames++
		if won {
			stat.Wins++
		} else {
			stat.Losses++
		}
	}

	for _, m := range matches {
		observe(m.Player1Name, m.Winner == match.WinnerP1)
		observe(m.Player2Name, m.Winner == match.WinnerP2)
	}

	e.metrics.ObserveAggregationDuration(time.Since(startTime).Seconds())
	return totals, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
