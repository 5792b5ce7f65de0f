package scoring

import "dipscore/models"

// GameScore is one score earned by one player for one game. A player can
// earn several of these in a round, e.g. on multiple boards or after a
// mid-game replacement.
type GameScore struct {
	Player models.Player
	Score  float64
}

// RoundScoringSystem combines a player's game scores within one round into
// a single round score
type RoundScoringSystem interface {
	Name() string
	Scores(gameScores []GameScore) map[models.Player]float64
}

// bestGame: if a player played multiple games, their best game score counts.
type bestGame struct{}

func (bestGame) Name() string { return "Best game counts" }

func (bestGame) Scores(gameScores []GameScore) map[models.Player]float64 {
	scores := make(map[models.Player]float64)
	for _, gs := range gameScores {
		if best, ok := scores[gs.Player]; !ok || gs.Score > best {
			scores[gs.Player] = gs.Score
		}
	}
	return scores
}
