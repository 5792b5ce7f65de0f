package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"dipscore/models"
)

// UnrankedRank is the rank given to players excluded from the numeric
// ranking. It sorts after every real rank.
const UnrankedRank = math.MaxInt32

// ErrNoPlayers means standings were requested for a tournament nobody is in
var ErrNoPlayers = errors.New("tournament has no players")

// Standing is one row of a tournament's standings
type Standing struct {
	Rank     int
	Player   models.Player
	Score    float64
	Unranked bool
}

// Standings is the result of scoring a whole tournament: the ordered player
// standings plus every player's score in each round, keyed by round number.
type Standings struct {
	Players     []Standing
	RoundScores map[int]map[models.Player]float64
}

// ComputeStandings scores every game of every round of the tournament,
// combines the results with the tournament's configured round and tournament
// scoring systems, and ranks the players. Equal scores share a rank, further
// players' ranks reflect how many players are strictly ahead, and players
// flagged unranked are listed last with UnrankedRank. The same snapshot
// always produces the same standings.
func ComputeStandings(t *models.TournamentState) (*Standings, error) {
	if len(t.Players) == 0 {
		return nil, fmt.Errorf("standings for %q: %w", t.Name, ErrNoPlayers)
	}
	roundSystem, err := RoundSystem(t.RoundScoringSystem)
	if err != nil {
		return nil, err
	}
	tournamentSystem, err := TournamentSystem(t.TournamentScoringSystem)
	if err != nil {
		return nil, err
	}

	roundScores := make(map[int]map[models.Player]float64, len(t.Rounds))
	var allRoundScores []RoundScore
	for _, r := range t.Rounds {
		gameSystem, err := GameSystem(r.GameScoringSystem)
		if err != nil {
			return nil, err
		}
		var gameScores []GameScore
		for i := range r.Games {
			g := &r.Games[i]
			history := &GameHistory{Counts: g.CentreCounts, Draw: g.Draw, DIAS: r.DIAS}
			powerScores, err := gameSystem.Scores(history)
			if err != nil {
				return nil, fmt.Errorf("scoring game %q: %w", g.Name, err)
			}
			for power, score := range powerScores {
				// The power's score goes to whoever held the power last
				player, ok := g.LatestPlayer(power)
				if !ok {
					continue
				}
				gameScores = append(gameScores, GameScore{Player: player, Score: score})
			}
		}
		scores := roundSystem.Scores(gameScores)
		roundScores[r.Number] = scores
		for p, s := range scores {
			allRoundScores = append(allRoundScores, RoundScore{Player: p, Score: s})
		}
	}

	tournamentScores := tournamentSystem.Scores(allRoundScores)

	standings := make([]Standing, 0, len(t.Players))
	for _, tp := range t.Players {
		standings = append(standings, Standing{
			Player:   tp.Player,
			Score:    tournamentScores[tp.Player],
			Unranked: tp.Unranked,
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Unranked != b.Unranked {
			return !a.Unranked
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Player.SortsBefore(b.Player)
	})

	// Assign ranks. Unranked players never take up a numeric rank slot.
	ranked := 0
	for i := range standings {
		if standings[i].Unranked {
			standings[i].Rank = UnrankedRank
			continue
		}
		ranked++
		if i > 0 && !standings[i-1].Unranked && standings[i].Score == standings[i-1].Score {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = ranked
		}
	}

	return &Standings{Players: standings, RoundScores: roundScores}, nil
}
