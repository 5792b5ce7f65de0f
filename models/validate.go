package models

import (
	"errors"
	"fmt"
)

// ErrInvalidGameState marks data-entry that would leave a game's history
// inconsistent. All of these are caught before anything is stored, so the
// scoring engine can assume a valid history.
var ErrInvalidGameState = errors.New("invalid game state")

// ValidateYear checks for a valid game year
func ValidateYear(year int) error {
	if year < FirstYear {
		return fmt.Errorf("%w: %d is not a valid game year", ErrInvalidGameState, year)
	}
	return nil
}

// ValidateSCCount checks for a valid centre count
func ValidateSCCount(count int) error {
	if count < 0 || count > TotalSCs {
		return fmt.Errorf("%w: %d is not a valid SC count", ErrInvalidGameState, count)
	}
	return nil
}

// ValidateCentreCountStep checks a year-over-year transition for one power.
// A power cannot more than double its count in a year and cannot come back
// from an elimination.
func ValidateCentreCountStep(prev, next CentreCount) error {
	if next.Count > 2*prev.Count {
		return fmt.Errorf("%w: SC count for %s cannot more than double in a year (%d to %d)",
			ErrInvalidGameState, prev.Power, prev.Count, next.Count)
	}
	if prev.Count == 0 && next.Count > 0 {
		return fmt.Errorf("%w: SC count for %s cannot increase from zero", ErrInvalidGameState, prev.Power)
	}
	return nil
}

// Validate checks a draw proposal against the final-year centre counts of its
// game. Dead powers cannot be in the draw, and in a DIAS game every living
// power must be.
func (d DrawProposal) Validate(finalCounts []CentreCount, dias bool) error {
	if len(d.Powers) == 0 {
		return fmt.Errorf("%w: draw proposal names no powers", ErrInvalidGameState)
	}
	seen := map[Power]bool{}
	for _, p := range d.Powers {
		if !p.Valid() {
			return fmt.Errorf("%w: %s is not a great power", ErrInvalidGameState, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %s present more than once", ErrInvalidGameState, p)
		}
		seen[p] = true
	}
	for _, sc := range finalCounts {
		if d.Includes(sc.Power) {
			if sc.Count == 0 {
				return fmt.Errorf("%w: dead power %s included in proposal", ErrInvalidGameState, sc.Power)
			}
		} else if dias && sc.Count > 0 {
			return fmt.Errorf("%w: missing alive power %s in DIAS game", ErrInvalidGameState, sc.Power)
		}
	}
	return nil
}

// CheckOverlap validates that two players' terms playing the same power do
// not overlap. Handing over mid-year is only possible from Spring to Fall.
func (gp GamePlayer) CheckOverlap(other GamePlayer) error {
	if gp.Power != other.Power {
		return nil
	}
	var weWereFirst bool
	switch {
	case gp.FirstYear < other.FirstYear:
		weWereFirst = true
	case gp.FirstYear == other.FirstYear:
		if gp.FirstSeason == other.FirstSeason {
			return fmt.Errorf("%w: %s and %s both start playing %s in %s %d",
				ErrInvalidGameState, gp.Player, other.Player, gp.Power, gp.FirstSeason, gp.FirstYear)
		}
		weWereFirst = gp.FirstSeason == Spring
	default:
		weWereFirst = false
	}
	earlier, later := gp, other
	if !weWereFirst {
		earlier, later = other, gp
	}
	err := fmt.Errorf("%w: %s is listed as still playing %s when %s takes over in %s %d",
		ErrInvalidGameState, earlier.Player, earlier.Power, later.Player, later.FirstSeason, later.FirstYear)
	if earlier.LastYear == 0 || earlier.LastYear > later.FirstYear {
		return err
	}
	if earlier.LastYear == later.FirstYear {
		if earlier.LastSeason != Spring || later.FirstSeason != Fall {
			return err
		}
	}
	return nil
}
