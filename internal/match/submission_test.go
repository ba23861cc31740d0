package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	t.Run("normalizes a full submission", func(t *testing.T) {
		sub := match.Submission{
			Player1Name: "  tien ",
			Player2Name: "villa",
			Winner:      "p1",
			ScoreP1:     intPtr(3),
			ScoreP2:     intPtr(2),
			Stage:       " Final Destination ",
			CharacterP1: "fox",
			CharacterP2: " falco ",
			Mode:        "local",
		}

		rec, err := sub.Validate()
		require.NoError(t, err)

		assert.Equal(t, "TIEN", rec.Player1Name)
		assert.Equal(t, "VILLA", rec.Player2Name)
		assert.Equal(t, match.WinnerP1, rec.Winner)
		assert.Equal(t, 3, rec.ScoreP1)
		assert.Equal(t, 2, rec.ScoreP2)
		require.NotNil(t, rec.Stage)
		assert.Equal(t, "Final Destination", *rec.Stage)
		require.NotNil(t, rec.CharacterP1)
		assert.Equal(t, "FOX", *rec.CharacterP1)
		require.NotNil(t, rec.CharacterP2)
		assert.Equal(t, "FALCO", *rec.CharacterP2)
		require.NotNil(t, rec.Mode)
		assert.Equal(t, "local", *rec.Mode)
	})

	t.Run("defaults absent scores to zero", func(t *testing.T) {
		rec, err := match.Submission{Player1Name: "A", Player2Name: "B", Winner: "p2"}.Validate()
		require.NoError(t, err)
		assert.Equal(t, 0, rec.ScoreP1)
		assert.Equal(t, 0, rec.ScoreP2)
	})

	t.Run("collapses empty optionals to nil", func(t *testing.T) {
		rec, err := match.Submission{
			Player1Name: "A",
			Player2Name: "B",
			Winner:      "p1",
			Stage:       "   ",
			Mode:        "",
		}.Validate()
		require.NoError(t, err)
		assert.Nil(t, rec.Stage)
		assert.Nil(t, rec.CharacterP1)
		assert.Nil(t, rec.CharacterP2)
		assert.Nil(t, rec.Mode)
	})

	t.Run("keeps an unknown mode as given", func(t *testing.T) {
		rec, err := match.Submission{Player1Name: "A", Player2Name: "B", Winner: "p1", Mode: "tournament"}.Validate()
		require.NoError(t, err)
		require.NotNil(t, rec.Mode)
		assert.Equal(t, "tournament", *rec.Mode)
	})

	t.Run("rejects blank player names", func(t *testing.T) {
		_, err := match.Submission{Player1Name: "   ", Player2Name: "B", Winner: "p1"}.Validate()
		require.Error(t, err)
		assert.True(t, match.IsValidationError(err))

		_, err = match.Submission{Player1Name: "A", Winner: "p1"}.Validate()
		require.Error(t, err)
		assert.True(t, match.IsValidationError(err))
	})

	t.Run("rejects an invalid winner", func(t *testing.T) {
		for _, winner := range []string{"", "p3", "P1", "player1"} {
			_, err := match.Submission{Player1Name: "A", Player2Name: "B", Winner: winner}.Validate()
			require.Error(t, err, "winner %q should be rejected", winner)
			assert.True(t, match.IsValidationError(err))
		}
	})

	t.Run("rejects negative scores", func(t *testing.T) {
		_, err := match.Submission{Player1Name: "A", Player2Name: "B", Winner: "p1", ScoreP2: intPtr(-1)}.Validate()
		require.Error(t, err)
		assert.True(t, match.IsValidationError(err))
		assert.Contains(t, err.Error(), "score_p2")
	})
}
