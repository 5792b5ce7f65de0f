package dipscore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipscore/models"
	"dipscore/scoring"
)

func reportState() *models.TournamentState {
	players := []models.Player{
		{FirstName: "Alice", LastName: "Austin"},
		{FirstName: "Bob", LastName: "Berlin"},
		{FirstName: "Carol", LastName: "Clark"},
		{FirstName: "Dan", LastName: "Dent"},
		{FirstName: "Erin", LastName: "Eyre"},
		{FirstName: "Frank", LastName: "Frost"},
		{FirstName: "Grace", LastName: "Gill"},
	}
	game := models.GameState{Name: "r1g1"}
	for i, power := range models.GreatPowers() {
		game.Players = append(game.Players, models.GamePlayer{
			Player: players[i], Power: power,
			FirstYear: models.FirstYear, FirstSeason: models.Spring,
		})
		game.CentreCounts = append(game.CentreCounts, models.CentreCount{
			Power: power, Year: 1906, Count: []int{14, 12, 8, 0, 0, 0, 0}[i],
		})
	}
	game.Draw = &models.DrawProposal{
		Year: 1906, Season: models.Fall, Proposer: models.Austria, Passed: true,
		Powers: []models.Power{models.Austria, models.England},
	}
	game.Finished = true

	tps := make([]models.TournamentPlayer, len(players))
	for i, p := range players {
		tps[i] = models.TournamentPlayer{Player: p}
	}
	return &models.TournamentState{
		Name:                    "Test Open",
		TournamentScoringSystem: "Sum best 2 rounds",
		RoundScoringSystem:      "Best game counts",
		Rounds: []models.RoundState{
			{Number: 1, GameScoringSystem: "Draw size", Games: []models.GameState{game}},
		},
		Players: tps,
	}
}

func TestGenerateStandingsHTML(t *testing.T) {
	state := reportState()
	state.Players[6].Unranked = true

	html, err := GenerateStandingsHTML(state)
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<h1>Test Open</h1>")
	assert.Contains(t, out, "Alice Austin")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "Unranked")
	// The unranked player goes last
	assert.Less(t, strings.Index(out, "Alice Austin"), strings.Index(out, "Grace Gill"))
}

func TestGenerateBestCountriesHTML(t *testing.T) {
	html, err := GenerateBestCountriesHTML(reportState(), scoring.BestByCount)
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "Best countries")
	assert.Contains(t, out, "<th>Austria-Hungary</th>")
	assert.Contains(t, out, "Alice Austin (14 centres, 50.00)")
}

func TestResultString(t *testing.T) {
	t.Run("Passed draw", func(t *testing.T) {
		state := reportState()
		result, err := ResultString(&state.Rounds[0].Games[0])
		require.NoError(t, err)
		assert.Equal(t, "Vote passed to end game as a 2-way draw between Alice Austin (A), Bob Berlin (E)", result)
	})

	t.Run("Concession", func(t *testing.T) {
		state := reportState()
		g := state.Rounds[0].Games[0]
		g.Draw.Powers = []models.Power{models.Austria}
		result, err := ResultString(&g)
		require.NoError(t, err)
		assert.Equal(t, "Game conceded to Alice Austin (A)", result)
	})

	t.Run("Solo", func(t *testing.T) {
		state := reportState()
		g := state.Rounds[0].Games[0]
		g.Draw = nil
		g.CentreCounts[0].Count = 18
		result, err := ResultString(&g)
		require.NoError(t, err)
		assert.Equal(t, "Game won by Alice Austin (A) with 18 centres", result)
	})

	t.Run("Timed out game reports board top", func(t *testing.T) {
		state := reportState()
		g := state.Rounds[0].Games[0]
		g.Draw = nil
		result, err := ResultString(&g)
		require.NoError(t, err)
		assert.Equal(t, "Game ended. Board top is 14 centres, for Alice Austin (A)", result)
	})

	t.Run("Ongoing game has no result", func(t *testing.T) {
		state := reportState()
		g := state.Rounds[0].Games[0]
		g.Draw = nil
		g.Finished = false
		result, err := ResultString(&g)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
