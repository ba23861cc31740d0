package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/metrics"
)

func played(p1, p2 string, winner match.Winner) *match.Match {
	return &match.Match{Player1Name: p1, Player2Name: p2, Winner: winner}
}

func sourceOf(matches ...*match.Match) *match.MockStore {
	src := match.NewMock()
	src.GetAllMatchesFunc = func() ([]*match.Match, error) {
		return matches, nil
	}
	src.CountFunc = func() (int, error) {
		return len(matches), nil
	}
	return src
}

func TestPlayerStats(t *testing.T) {
	t.Run("folds both sides of every match", func(t *testing.T) {
		src := sourceOf(
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP2),
		)
		engine := New(src, metrics.NewMock())

		statA, err := engine.PlayerStats("A")
		require.NoError(t, err)
		assert.Equal(t, PlayerStat{Name: "A", Wins: 2, Losses: 1, TotalGames: 3, WinRate: 0.67}, statA)

		statB, err := engine.PlayerStats("B")
		require.NoError(t, err)
		assert.Equal(t, PlayerStat{Name: "B", Wins: 1, Losses: 2, TotalGames: 3, WinRate: 0.33}, statB)
	})

	t.Run("returns zeroed stats for an unknown player", func(t *testing.T) {
		engine := New(sourceOf(), metrics.NewMock())

		stat, err := engine.PlayerStats("UNKNOWN")
		require.NoError(t, err)
		assert.Equal(t, PlayerStat{Name: "UNKNOWN"}, stat)
	})

	t.Run("matches against the stored name exactly", func(t *testing.T) {
		engine := New(sourceOf(played("TIEN", "VILLA", match.WinnerP1)), metrics.NewMock())

		stat, err := engine.PlayerStats("tien")
		require.NoError(t, err)
		assert.Zero(t, stat.TotalGames, "lookup is case-sensitive on the stored name")
	})

	t.Run("propagates source errors", func(t *testing.T) {
		src := match.NewMock()
		src.GetAllMatchesFunc = func() ([]*match.Match, error) {
			return nil, errors.New("db gone")
		}
		engine := New(src, metrics.NewMock())

		_, err := engine.PlayerStats("A")
		assert.Error(t, err)
	})
}

func TestLeaderboard(t *testing.T) {
	t.Run("ranks by wins then total games then name", func(t *testing.T) {
		// A: 3 wins / 4 games, B: 3 wins / 3 games, C: 0 wins, D: 1 win.
		src := sourceOf(
			played("A", "C", match.WinnerP1),
			played("A", "C", match.WinnerP1),
			played("A", "C", match.WinnerP1),
			played("A", "D", match.WinnerP2),
			played("B", "C", match.WinnerP1),
			played("B", "C", match.WinnerP1),
			played("B", "C", match.WinnerP1),
		)
		engine := New(src, metrics.NewMock())

		entries, err := engine.Leaderboard(10, 1)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, "A", entries[0].Name, "equal wins resolve by more games played")
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "B", entries[1].Name)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "D", entries[2].Name)
		assert.Equal(t, "C", entries[3].Name)
		assert.Equal(t, 4, entries[3].Rank)
	})

	t.Run("breaks full ties by name for determinism", func(t *testing.T) {
		src := sourceOf(
			played("ZED", "YAK", match.WinnerP1),
			played("YAK", "ZED", match.WinnerP1),
		)
		engine := New(src, metrics.NewMock())

		entries, err := engine.Leaderboard(10, 1)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "YAK", entries[0].Name)
		assert.Equal(t, "ZED", entries[1].Name)
	})

	t.Run("computes percentage from the unrounded rate", func(t *testing.T) {
		src := sourceOf(
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP2),
		)
		engine := New(src, metrics.NewMock())

		entries, err := engine.Leaderboard(10, 1)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 0.67, entries[0].WinRate)
		assert.Equal(t, 66.67, entries[0].WinRatePct)
		assert.Equal(t, 0.33, entries[1].WinRate)
		assert.Equal(t, 33.33, entries[1].WinRatePct)
	})

	t.Run("filters players below the minimum games", func(t *testing.T) {
		src := sourceOf(
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP1),
			played("A", "C", match.WinnerP1),
		)
		engine := New(src, metrics.NewMock())

		entries, err := engine.Leaderboard(10, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "A", entries[0].Name)
		assert.Equal(t, "B", entries[1].Name)
	})

	t.Run("truncates to the limit and keeps rank positions", func(t *testing.T) {
		src := sourceOf(
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP1),
			played("A", "B", match.WinnerP1),
			played("B", "A", match.WinnerP1),
		)
		engine := New(src, metrics.NewMock())

		entries, err := engine.Leaderboard(1, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "A", entries[0].Name)
		assert.Equal(t, 3, entries[0].Wins)
	})

	t.Run("a zero limit yields an empty board", func(t *testing.T) {
		engine := New(sourceOf(played("A", "B", match.WinnerP1)), metrics.NewMock())

		entries, err := engine.Leaderboard(0, 1)
		require.NoError(t, err)
		assert.Len(t, entries, 0)
	})

	t.Run("clamps out-of-range arguments instead of rejecting", func(t *testing.T) {
		engine := New(sourceOf(played("A", "B", match.WinnerP1)), metrics.NewMock())

		entries, err := engine.Leaderboard(1000, -5)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("observes the aggregation duration", func(t *testing.T) {
		metr := metrics.NewMock()
		engine := New(sourceOf(played("A", "B", match.WinnerP1)), metr)

		_, err := engine.Leaderboard(10, 1)
		require.NoError(t, err)
		assert.Len(t, metr.AggregationDurations(), 1)
	})
}

func TestSummary(t *testing.T) {
	engine := New(sourceOf(
		played("A", "B", match.WinnerP1),
		played("A", "B", match.WinnerP2),
	), metrics.NewMock())

	summary, err := engine.Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{TotalMatches: 2}, summary)
}

func TestWinsAndLossesAlwaysBalance(t *testing.T) {
	src := sourceOf(
		played("A", "B", match.WinnerP1),
		played("B", "C", match.WinnerP2),
		played("C", "A", match.WinnerP1),
		played("D", "A", match.WinnerP2),
		played("B", "D", match.WinnerP1),
	)
	engine := New(src, metrics.NewMock())

	entries, err := engine.Leaderboard(MaxLeaderboardLimit, 0)
	require.NoError(t, err)

	var wins, losses, games int
	for _, entry := range entries {
		wins += entry.Wins
		losses += entry.Losses
		games += entry.TotalGames
		assert.Equal(t, entry.TotalGames, entry.Wins+entry.Losses)
	}
	assert.Equal(t, 5, wins, "every match contributes exactly one win")
	assert.Equal(t, 5, losses, "every match contributes exactly one loss")
	assert.Equal(t, 10, games)
}

func TestRepeatedReadsAreIdentical(t *testing.T) {
	src := sourceOf(
		played("A", "B", match.WinnerP1),
		played("B", "A", match.WinnerP1),
		played("A", "C", match.WinnerP2),
	)
	engine := New(src, metrics.NewMock())

	first, err := engine.Leaderboard(10, 1)
	require.NoError(t, err)
	second, err := engine.Leaderboard(10, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
