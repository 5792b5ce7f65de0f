package scoring

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSystem means a scoring system name has no registered
// implementation. Configuration should be validated against the registries
// when it is saved, so hitting this later points at stale stored config.
var ErrUnknownSystem = errors.New("unknown scoring system")

// The closed set of scoring systems at each level. Selection is by name,
// which is what gets stored in tournament and round configuration.
var (
	gameSystems = []GameScoringSystem{
		soloOrBust{},
		drawSize{},
		cDiplo{name: "CDiplo 100", soloerPts: 100, playedPts: 1, positionPts: []float64{38, 14, 7}},
		cDiplo{name: "CDiplo 80", soloerPts: 80, positionPts: []float64{25, 14, 7}},
		sumOfSquares{},
		carnage{positionPts: []float64{7000, 6000, 5000, 4000, 3000, 2000, 1000}},
	}

	roundSystems = []RoundScoringSystem{
		bestGame{},
	}

	tournamentSystems = []TournamentScoringSystem{
		sumBestN{name: "Sum best 2 rounds", n: 2},
		sumBestN{name: "Sum best 3 rounds", n: 3},
		sumBestN{name: "Sum best 4 rounds", n: 4},
	}
)

// GameSystem returns the game scoring system with the given name
func GameSystem(name string) (GameScoringSystem, error) {
	for _, s := range gameSystems {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: game scoring system %q", ErrUnknownSystem, name)
}

// RoundSystem returns the round scoring system with the given name
func RoundSystem(name string) (RoundScoringSystem, error) {
	for _, s := range roundSystems {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: round scoring system %q", ErrUnknownSystem, name)
}

// TournamentSystem returns the tournament scoring system with the given name
func TournamentSystem(name string) (TournamentScoringSystem, error) {
	for _, s := range tournamentSystems {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: tournament scoring system %q", ErrUnknownSystem, name)
}

// GameSystemNames lists the available game scoring systems, sorted by name,
// for configuration UIs
func GameSystemNames() []string {
	names := make([]string, len(gameSystems))
	for i, s := range gameSystems {
		names[i] = s.Name()
	}
	sort.Strings(names)
	return names
}

// RoundSystemNames lists the available round scoring systems, sorted by name
func RoundSystemNames() []string {
	names := make([]string, len(roundSystems))
	for i, s := range roundSystems {
		names[i] = s.Name()
	}
	sort.Strings(names)
	return names
}

// TournamentSystemNames lists the available tournament scoring systems,
// sorted by name
func TournamentSystemNames() []string {
	names := make([]string, len(tournamentSystems))
	for i, s := range tournamentSystems {
		names[i] = s.Name()
	}
	sort.Strings(names)
	return names
}
