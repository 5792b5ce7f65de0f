package models

// Board constants for the standard map.
const (
	// TotalSCs is the number of supply centres on the board.
	TotalSCs = 34
	// WinningSCs is the centre count needed to win outright.
	WinningSCs = TotalSCs/2 + 1
	// FirstYear is the first game year that gets played.
	FirstYear = 1901
)

// Power is one of the seven great powers that can be played
type Power string

const (
	Austria Power = "Austria-Hungary"
	England Power = "England"
	France  Power = "France"
	Germany Power = "Germany"
	Italy   Power = "Italy"
	Russia  Power = "Russia"
	Turkey  Power = "Turkey"
)

// GreatPowers returns all seven powers in alphabetical order
func GreatPowers() []Power {
	return []Power{Austria, England, France, Germany, Italy, Russia, Turkey}
}

// Abbreviation returns the single-letter abbreviation for the power
func (p Power) Abbreviation() string {
	switch p {
	case Austria:
		return "A"
	case England:
		return "E"
	case France:
		return "F"
	case Germany:
		return "G"
	case Italy:
		return "I"
	case Russia:
		return "R"
	case Turkey:
		return "T"
	}
	return "?"
}

// StartingCentres returns how many centres the power starts with
func (p Power) StartingCentres() int {
	if p == Russia {
		return 4
	}
	return 3
}

// Valid reports whether p is one of the seven great powers
func (p Power) Valid() bool {
	switch p {
	case Austria, England, France, Germany, Italy, Russia, Turkey:
		return true
	}
	return false
}

// Season is the point within a game year at which something happened
type Season string

const (
	Spring Season = "S"
	Fall   Season = "F"
)

// Valid reports whether s is a recognized season
func (s Season) Valid() bool {
	return s == Spring || s == Fall
}
