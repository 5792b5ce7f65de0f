// Package scoring computes scores and standings for Diplomacy tournaments.
// It is a pure function of the snapshots it is given: nothing here reads
// storage, logs, or keeps state between calls, so independent tournaments
// can be scored concurrently without coordination.
package scoring

import (
	"errors"
	"fmt"
	"sort"

	"dipscore/models"
)

// ErrNoCentreCounts means a game had no recorded history at all. Storage
// seeds the pre-game year when a game is created, so this is a precondition
// violation rather than something to score around.
var ErrNoCentreCounts = errors.New("game has no centre counts")

// GameHistory is everything a game scoring system looks at: the game's full
// centre-count history, its passed draw if any, and the round's DIAS rule.
type GameHistory struct {
	Counts []models.CentreCount
	Draw   *models.DrawProposal
	DIAS   bool
}

// FinalYear returns the most recent year there are centre counts for
func (h *GameHistory) FinalYear() (int, error) {
	if len(h.Counts) == 0 {
		return 0, ErrNoCentreCounts
	}
	year := h.Counts[0].Year
	for _, sc := range h.Counts {
		if sc.Year > year {
			year = sc.Year
		}
	}
	return year, nil
}

// FinalCounts returns the centre counts for the most recent year only,
// ordered largest to smallest. Powers tied on count are ordered by name so
// the result is deterministic.
func (h *GameHistory) FinalCounts() ([]models.CentreCount, error) {
	year, err := h.FinalYear()
	if err != nil {
		return nil, err
	}
	var final []models.CentreCount
	for _, sc := range h.Counts {
		if sc.Year == year {
			final = append(final, sc)
		}
	}
	sort.Slice(final, func(i, j int) bool {
		if final[i].Count != final[j].Count {
			return final[i].Count > final[j].Count
		}
		return final[i].Power < final[j].Power
	})
	return final, nil
}

// Soloed reports whether any power reached a winning centre count
func (h *GameHistory) Soloed() (bool, error) {
	final, err := h.FinalCounts()
	if err != nil {
		return false, err
	}
	return final[0].Count >= models.WinningSCs, nil
}

func survivors(final []models.CentreCount) int {
	n := 0
	for _, sc := range final {
		if sc.Count > 0 {
			n++
		}
	}
	return n
}

// GameScoringSystem calculates a score for each power of one game
type GameScoringSystem interface {
	Name() string
	Scores(h *GameHistory) (map[models.Power]float64, error)
}

// soloOrBust: solos score 100 points, everything else scores 0.
type soloOrBust struct{}

func (soloOrBust) Name() string { return "Solo or bust" }

func (soloOrBust) Scores(h *GameHistory) (map[models.Power]float64, error) {
	final, err := h.FinalCounts()
	if err != nil {
		return nil, err
	}
	scores := make(map[models.Power]float64, len(final))
	for _, sc := range final {
		scores[sc.Power] = 0
		if sc.Count >= models.WinningSCs {
			scores[sc.Power] = 100
		}
	}
	return scores, nil
}

// drawSize: solos score 100 points; otherwise the members of a passed draw
// split 100 points, or failing that all survivors split 100 points.
type drawSize struct{}

func (drawSize) Name() string { return "Draw size" }

func (drawSize) Scores(h *GameHistory) (map[models.Power]float64, error) {
	final, err := h.FinalCounts()
	if err != nil {
		return nil, err
	}
	soloed := final[0].Count >= models.WinningSCs
	alive := survivors(final)
	scores := make(map[models.Power]float64, len(final))
	for _, sc := range final {
		scores[sc.Power] = 0
		switch {
		case sc.Count >= models.WinningSCs:
			scores[sc.Power] = 100
		case soloed:
			// Losers to a solo keep zero
		case h.Draw != nil:
			if h.Draw.Includes(sc.Power) {
				scores[sc.Power] = 100 / float64(h.Draw.Size())
			}
		case sc.Count > 0:
			scores[sc.Power] = 100 / float64(alive)
		}
	}
	return scores, nil
}

// cDiplo is the C-Diplo family. With a solo the soloer scores soloerPts and
// everyone else lossPts. Otherwise every power scores playedPts plus one
// point per centre plus position points for the top three places, with tied
// places splitting their points.
type cDiplo struct {
	name        string
	soloerPts   float64
	playedPts   float64
	positionPts []float64
	lossPts     float64
}

func (s cDiplo) Name() string { return s.name }

func (s cDiplo) Scores(h *GameHistory) (map[models.Power]float64, error) {
	final, err := h.FinalCounts()
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(final))
	for i, sc := range final {
		counts[i] = sc.Count
	}
	rankPts := AdjustRankScore(counts, s.positionPts)
	soloed := final[0].Count >= models.WinningSCs
	scores := make(map[models.Power]float64, len(final))
	for i, sc := range final {
		if soloed {
			scores[sc.Power] = s.lossPts
			if sc.Count >= models.WinningSCs {
				scores[sc.Power] = s.soloerPts
			}
		} else {
			scores[sc.Power] = s.playedPts + float64(sc.Count) + rankPts[i]
		}
	}
	return scores, nil
}

// carnage: finishing position grants 7000 down to 1000 points, tied
// positions split their points, and each power also scores a point per
// centre. A soloer takes all the position points plus the whole board.
type carnage struct {
	positionPts []float64
}

func (carnage) Name() string { return "Carnage with dead equal" }

func (s carnage) Scores(h *GameHistory) (map[models.Power]float64, error) {
	final, err := h.FinalCounts()
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(final))
	for i, sc := range final {
		counts[i] = sc.Count
	}
	rankPts := AdjustRankScore(counts, s.positionPts)
	soloed := final[0].Count >= models.WinningSCs
	var allPositionPts float64
	for _, p := range s.positionPts {
		allPositionPts += p
	}
	scores := make(map[models.Power]float64, len(final))
	for i, sc := range final {
		if soloed {
			scores[sc.Power] = 0
			if sc.Count >= models.WinningSCs {
				scores[sc.Power] = allPositionPts + models.TotalSCs
			}
		} else {
			scores[sc.Power] = float64(sc.Count) + rankPts[i]
		}
	}
	return scores, nil
}

// sumOfSquares: a soloer scores 100 and everyone else 0. Otherwise each
// power's squared centre count is normalized so the scores sum to 100.
type sumOfSquares struct{}

func (sumOfSquares) Name() string { return "Sum of Squares" }

func (sumOfSquares) Scores(h *GameHistory) (map[models.Power]float64, error) {
	final, err := h.FinalCounts()
	if err != nil {
		return nil, err
	}
	scores := make(map[models.Power]float64, len(final))
	sumSquares := 0
	for _, sc := range final {
		if sc.Count >= models.WinningSCs {
			for _, other := range final {
				scores[other.Power] = 0
			}
			scores[sc.Power] = 100
			return scores, nil
		}
		sumSquares += sc.Count * sc.Count
	}
	if sumSquares == 0 {
		return nil, fmt.Errorf("scoring %q: no power owns any centres", sumOfSquares{}.Name())
	}
	for _, sc := range final {
		scores[sc.Power] = float64(sc.Count*sc.Count) * 100 / float64(sumSquares)
	}
	return scores, nil
}
