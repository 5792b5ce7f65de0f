package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipscore/models"
	"dipscore/models/storm"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	engine, err := storm.NewStorageEngine(filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })

	tournament, err := engine.CreateTournament("Spring Open",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		"Sum best 2 rounds", "Best game counts")
	require.NoError(t, err)

	players := []models.Player{
		{FirstName: "Alice", LastName: "Austin"},
		{FirstName: "Bob", LastName: "Berlin"},
		{FirstName: "Carol", LastName: "Clark"},
		{FirstName: "Dan", LastName: "Dent"},
		{FirstName: "Erin", LastName: "Eyre"},
		{FirstName: "Frank", LastName: "Frost"},
		{FirstName: "Grace", LastName: "Gill"},
	}
	for i, p := range players {
		_, err := engine.CreatePlayer(p.FirstName, p.LastName)
		require.NoError(t, err)
		_, err = tournament.AddPlayer(p, i == 6)
		require.NoError(t, err)
	}

	round, err := tournament.AddRound("Draw size", false, 0)
	require.NoError(t, err)
	for _, p := range players {
		require.NoError(t, round.AddPlayer(p))
	}

	game, err := round.CreateGame("r1g1", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	for i, power := range models.GreatPowers() {
		require.NoError(t, game.AddPlayer(players[i], power, models.FirstYear, models.Spring))
	}
	require.NoError(t, game.SetCentreCounts(1903, map[models.Power]int{
		models.Austria: 10, models.England: 9, models.France: 6, models.Germany: 5,
		models.Italy: 4, models.Russia: 0, models.Turkey: 0,
	}))
	require.NoError(t, game.AddDrawProposal(models.DrawProposal{
		Year: 1903, Season: models.Fall, Proposer: models.Austria, Passed: true,
		Powers: []models.Power{models.Austria, models.England},
	}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(engine, log)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListTournaments(t *testing.T) {
	rec := get(t, testServer(t), "/tournaments")
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []tournamentInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "Spring Open", infos[0].Name)
	assert.Equal(t, "Sum best 2 rounds", infos[0].TournamentScoringSystem)
	assert.Equal(t, "Best game counts", infos[0].RoundScoringSystem)
}

func TestStandingsJSON(t *testing.T) {
	rec := get(t, testServer(t), "/api/tournaments/Spring%20Open/standings")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []standingRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 7)

	// Draw size scoring splits 100 between the two drawing powers
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "Alice Austin", rows[0].Player)
	assert.InDelta(t, 50, rows[0].Score, 1e-9)
	assert.Equal(t, 1, rows[1].Rank)
	assert.Equal(t, "Bob Berlin", rows[1].Player)

	// Unranked players sort last and carry no rank
	last := rows[6]
	assert.Equal(t, "Grace Gill", last.Player)
	assert.True(t, last.Unranked)
	assert.Zero(t, last.Rank)
}

func TestStandingsHTML(t *testing.T) {
	rec := get(t, testServer(t), "/tournaments/Spring%20Open/standings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1>Spring Open</h1>")
	assert.Contains(t, rec.Body.String(), "Alice Austin")
}

func TestBestCountriesJSON(t *testing.T) {
	rec := get(t, testServer(t), "/api/tournaments/Spring%20Open/best-countries?criterion=C")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[models.Power][]performanceRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out[models.Austria], 1)
	assert.Equal(t, "Alice Austin", out[models.Austria][0].Player)
	assert.Equal(t, 10, out[models.Austria][0].Count)
	assert.Equal(t, "r1g1", out[models.Austria][0].Game)
}

func TestBestCountriesHTML(t *testing.T) {
	rec := get(t, testServer(t), "/tournaments/Spring%20Open/best-countries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Best countries")
	assert.Contains(t, rec.Body.String(), "Alice Austin (10 centres, 50.00)")
}

func TestGameResult(t *testing.T) {
	rec := get(t, testServer(t), "/api/tournaments/Spring%20Open/games/r1g1/result")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "r1g1", out["game"])
	assert.Equal(t, "Vote passed to end game as a 2-way draw between Alice Austin (A), Bob Berlin (E)", out["result"])
}

func TestGameResultUnknownGame(t *testing.T) {
	rec := get(t, testServer(t), "/api/tournaments/Spring%20Open/games/nope/result")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownTournament(t *testing.T) {
	rec := get(t, testServer(t), "/api/tournaments/nope/standings")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSystems(t *testing.T) {
	rec := get(t, testServer(t), "/api/systems")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out["game"], "Solo or bust")
	assert.Contains(t, out["game"], "Sum of Squares")
	assert.Contains(t, out["round"], "Best game counts")
	assert.Contains(t, out["tournament"], "Sum best 3 rounds")
}
