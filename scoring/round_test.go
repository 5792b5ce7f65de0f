package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipscore/models"
)

func TestBestGameCounts(t *testing.T) {
	system, err := RoundSystem("Best game counts")
	require.NoError(t, err)

	alice := models.Player{FirstName: "Alice", LastName: "Austin"}
	bob := models.Player{FirstName: "Bob", LastName: "Berlin"}

	t.Run("Best of several games wins", func(t *testing.T) {
		scores := system.Scores([]GameScore{
			{Player: alice, Score: 3},
			{Player: alice, Score: 7},
			{Player: alice, Score: 5},
			{Player: bob, Score: 4},
		})
		assert.Equal(t, map[models.Player]float64{alice: 7, bob: 4}, scores)
	})

	t.Run("Single game passes through", func(t *testing.T) {
		scores := system.Scores([]GameScore{{Player: bob, Score: 42.5}})
		assert.Equal(t, map[models.Player]float64{bob: 42.5}, scores)
	})

	t.Run("No games means no round scores", func(t *testing.T) {
		assert.Empty(t, system.Scores(nil))
	})
}

func TestRoundSystemLookup(t *testing.T) {
	_, err := RoundSystem("Average game")
	assert.ErrorIs(t, err, ErrUnknownSystem)
	assert.Equal(t, []string{"Best game counts"}, RoundSystemNames())
}
