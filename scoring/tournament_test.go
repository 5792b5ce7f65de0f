package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipscore/models"
)

func TestSumBestN(t *testing.T) {
	alice := models.Player{FirstName: "Alice", LastName: "Austin"}
	bob := models.Player{FirstName: "Bob", LastName: "Berlin"}

	system, err := TournamentSystem("Sum best 2 rounds")
	require.NoError(t, err)

	t.Run("Top N of more rounds", func(t *testing.T) {
		scores := system.Scores([]RoundScore{
			{Player: alice, Score: 30},
			{Player: alice, Score: 50},
			{Player: alice, Score: 10},
		})
		assert.Equal(t, 80.0, scores[alice])
	})

	t.Run("Fewer rounds than N sums them all", func(t *testing.T) {
		scores := system.Scores([]RoundScore{{Player: bob, Score: 20}})
		assert.Equal(t, 20.0, scores[bob])
	})

	t.Run("Sum best 3 rounds", func(t *testing.T) {
		system3, err := TournamentSystem("Sum best 3 rounds")
		require.NoError(t, err)
		scores := system3.Scores([]RoundScore{
			{Player: alice, Score: 30},
			{Player: alice, Score: 50},
			{Player: alice, Score: 10},
			{Player: alice, Score: 5},
		})
		assert.Equal(t, 90.0, scores[alice])
	})
}

func TestTournamentSystemLookup(t *testing.T) {
	_, err := TournamentSystem("Sum best 9 rounds")
	assert.ErrorIs(t, err, ErrUnknownSystem)
	assert.Equal(t,
		[]string{"Sum best 2 rounds", "Sum best 3 rounds", "Sum best 4 rounds"},
		TournamentSystemNames())
}
