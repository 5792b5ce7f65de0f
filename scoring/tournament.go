package scoring

import (
	"sort"

	"dipscore/models"
)

// RoundScore is one player's score for one round
type RoundScore struct {
	Player models.Player
	Score  float64
}

// TournamentScoringSystem combines a player's round scores into an overall
// tournament score
type TournamentScoringSystem interface {
	Name() string
	Scores(roundScores []RoundScore) map[models.Player]float64
}

// sumBestN: sum each player's best n round scores. A player who played n or
// fewer rounds just gets the sum of all of them, and a player with no round
// scores gets zero.
type sumBestN struct {
	name string
	n    int
}

func (s sumBestN) Name() string { return s.name }

func (s sumBestN) Scores(roundScores []RoundScore) map[models.Player]float64 {
	perPlayer := make(map[models.Player][]float64)
	for _, rs := range roundScores {
		perPlayer[rs.Player] = append(perPlayer[rs.Player], rs.Score)
	}
	scores := make(map[models.Player]float64, len(perPlayer))
	for p, rounds := range perPlayer {
		sort.Sort(sort.Reverse(sort.Float64Slice(rounds)))
		total := 0.0
		for i, score := range rounds {
			if i >= s.n {
				break
			}
			total += score
		}
		scores[p] = total
	}
	return scores
}
