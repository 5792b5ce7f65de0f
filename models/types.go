package models

// Player is somebody who can play in tournaments
type Player struct {
	FirstName string
	LastName  string
}

// String returns the player's full name
func (p Player) String() string {
	return p.FirstName + " " + p.LastName
}

// SortsBefore orders players alphabetically by last name, then first name
func (p Player) SortsBefore(other Player) bool {
	if p.LastName != other.LastName {
		return p.LastName < other.LastName
	}
	return p.FirstName < other.FirstName
}

// CentreCount is the number of centres owned by one power at the end of a given game year
type CentreCount struct {
	Power Power
	Year  int
	Count int
}

// DrawProposal is a single draw or concession proposal in a game.
// A proposal naming a single power is a concession.
type DrawProposal struct {
	Year     int
	Season   Season
	Proposer Power
	Passed   bool
	Powers   []Power
}

// Size returns how many powers are in on the proposal
func (d DrawProposal) Size() int {
	return len(d.Powers)
}

// Includes reports whether the proposal names the given power
func (d DrawProposal) Includes(p Power) bool {
	for _, dp := range d.Powers {
		if dp == p {
			return true
		}
	}
	return false
}

// GamePlayer is a person who played a great power in a game, for a contiguous
// stretch of game years. Mid-game replacements give a power several GamePlayers
// with non-overlapping terms.
type GamePlayer struct {
	Player      Player
	Power       Power
	FirstYear   int
	FirstSeason Season
	// LastYear is zero while the player is still playing the power
	LastYear   int
	LastSeason Season
	Score      float64
}

// RoundPlayer is a person who played a round in a tournament
type RoundPlayer struct {
	Player Player
	Score  float64
}

// TournamentPlayer is one player in a tournament. Unranked players still get
// scored but are kept out of the numeric ranking (e.g. the tournament director).
type TournamentPlayer struct {
	Player   Player
	UUID     string
	Score    float64
	Unranked bool
}

// GameState is an immutable snapshot of one game: its full centre-count
// history, its passed draw if any, and who played which power.
type GameState struct {
	Name     string
	Finished bool
	// CentreCounts holds every recorded year, including the seeded pre-game year
	CentreCounts []CentreCount
	// Draw is the passed draw proposal, or nil
	Draw    *DrawProposal
	Players []GamePlayer
}

// LatestPlayer returns the most recent player of the given power in the game.
// With replacements the power's result is credited to whoever held it last.
func (g *GameState) LatestPlayer(power Power) (Player, bool) {
	var latest *GamePlayer
	for i := range g.Players {
		gp := &g.Players[i]
		if gp.Power != power {
			continue
		}
		if latest == nil || gp.FirstYear > latest.FirstYear ||
			(gp.FirstYear == latest.FirstYear && gp.FirstSeason == Fall && latest.FirstSeason == Spring) {
			latest = gp
		}
	}
	if latest == nil {
		return Player{}, false
	}
	return latest.Player, true
}

// RoundState is an immutable snapshot of one round
type RoundState struct {
	Number int
	// GameScoringSystem names how each game in the round is scored
	GameScoringSystem string
	// DIAS means a passed draw must include all survivors
	DIAS bool
	// FinalYear is the fixed last game year, or zero for none
	FinalYear int
	Games     []GameState
}

// TournamentState is an immutable snapshot of a whole tournament, enough to
// compute scores and standings "if it ended now"
type TournamentState struct {
	Name                    string
	TournamentScoringSystem string
	RoundScoringSystem      string
	Rounds                  []RoundState
	Players                 []TournamentPlayer
}
