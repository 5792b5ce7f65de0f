package scoring

import (
	"fmt"
	"sort"

	"dipscore/models"
)

// Criterion picks what "best performance as a power" is measured by
type Criterion string

const (
	// BestByCount ranks performances by final centre count
	BestByCount Criterion = "C"
	// BestByScore ranks performances by game score
	BestByScore Criterion = "S"
)

// Valid reports whether c is a recognized criterion
func (c Criterion) Valid() bool {
	return c == BestByCount || c == BestByScore
}

// PowerPerformance is one player's result playing one power in one game
type PowerPerformance struct {
	Player models.Player
	Game   string
	Round  int
	// Count is the power's final centre count in the game
	Count int
	// Score is the power's game score under the round's scoring system
	Score float64
}

// BestCountries ranks every performance as each power across all the
// tournament's games, best first under the given criterion. Ties are broken
// by player name and then game name, so rebuilding the board is
// deterministic. Row i of a "best countries" report is the i-th entry of
// each power's list.
func BestCountries(t *models.TournamentState, criterion Criterion) (map[models.Power][]PowerPerformance, error) {
	if !criterion.Valid() {
		return nil, fmt.Errorf("unknown best country criterion %q", criterion)
	}
	best := make(map[models.Power][]PowerPerformance, len(models.GreatPowers()))
	for _, power := range models.GreatPowers() {
		best[power] = nil
	}
	for _, r := range t.Rounds {
		gameSystem, err := GameSystem(r.GameScoringSystem)
		if err != nil {
			return nil, err
		}
		for i := range r.Games {
			g := &r.Games[i]
			history := &GameHistory{Counts: g.CentreCounts, Draw: g.Draw, DIAS: r.DIAS}
			final, err := history.FinalCounts()
			if err != nil {
				return nil, fmt.Errorf("best countries for game %q: %w", g.Name, err)
			}
			scores, err := gameSystem.Scores(history)
			if err != nil {
				return nil, fmt.Errorf("best countries for game %q: %w", g.Name, err)
			}
			for _, sc := range final {
				player, ok := g.LatestPlayer(sc.Power)
				if !ok {
					continue
				}
				best[sc.Power] = append(best[sc.Power], PowerPerformance{
					Player: player,
					Game:   g.Name,
					Round:  r.Number,
					Count:  sc.Count,
					Score:  scores[sc.Power],
				})
			}
		}
	}
	for power := range best {
		perfs := best[power]
		sort.Slice(perfs, func(i, j int) bool {
			a, b := perfs[i], perfs[j]
			switch criterion {
			case BestByScore:
				if a.Score != b.Score {
					return a.Score > b.Score
				}
			default:
				if a.Count != b.Count {
					return a.Count > b.Count
				}
			}
			if a.Player != b.Player {
				return a.Player.SortsBefore(b.Player)
			}
			return a.Game < b.Game
		})
	}
	return best, nil
}
