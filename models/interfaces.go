package models

import "time"

// StorageEngine is a backing that provides storage for tournaments and players
type StorageEngine interface {
	CreateTournament(name string, start, end time.Time, tournamentScoring, roundScoring string) (Tournament, error)
	CreatePlayer(firstName, lastName string) (Player, error)

	GetTournaments() ([]Tournament, error)
	GetTournament(name string) (Tournament, error)
	GetPlayers() ([]Player, error)

	Close() error
}

// Tournament is a single multi-round Diplomacy tournament
type Tournament interface {
	GetName() string
	StartDate() time.Time
	EndDate() time.Time
	// TournamentScoringSystem names how round scores combine into a tournament score
	TournamentScoringSystem() string
	// RoundScoringSystem names how game scores combine into a round score
	RoundScoringSystem() string

	AddPlayer(player Player, unranked bool) (TournamentPlayer, error)
	GetPlayers() ([]TournamentPlayer, error)

	AddRound(gameScoring string, dias bool, finalYear int) (Round, error)
	GetRounds() ([]Round, error)

	// State assembles the immutable snapshot the scoring engine consumes
	State() (*TournamentState, error)
	// SaveScores writes computed tournament and per-round scores back, keyed
	// by round number. Callers that need strict consistency must serialize
	// calls per tournament; otherwise the last write wins.
	SaveScores(tournamentScores map[Player]float64, roundScores map[int]map[Player]float64) error
}

// Round is a single round within a tournament
type Round interface {
	Number() int
	// GameScoringSystem names how each game in this round is scored
	GameScoringSystem() string
	IsDIAS() bool
	// FinalYear is the fixed last game year for the round, or zero
	FinalYear() int

	AddPlayer(player Player) error
	GetPlayers() ([]RoundPlayer, error)

	CreateGame(name string, startedAt time.Time) (Game, error)
	GetGames() ([]Game, error)
}

// Game is a single game of Diplomacy, within a round. Creating a game seeds
// the pre-game year's centre counts, so a game always has at least one year
// of history.
type Game interface {
	GetName() string
	IsFinished() bool

	// AddPlayer records a player taking over the power from the given point.
	// Terms for one power must not overlap.
	AddPlayer(player Player, power Power, firstYear int, firstSeason Season) error
	// EndPlayer records when a player stopped playing the power, so a
	// replacement can take over
	EndPlayer(player Player, power Power, lastYear int, lastSeason Season) error
	GetPlayers() ([]GamePlayer, error)

	// SetCentreCounts records the counts for the end of one game year.
	// Recording a winning count, or the round's fixed final year, finishes
	// the game.
	SetCentreCounts(year int, counts map[Power]int) error
	CentreCounts() ([]CentreCount, error)

	// AddDrawProposal records a draw vote. A passed proposal finishes the game.
	AddDrawProposal(proposal DrawProposal) error
	PassedDraw() (*DrawProposal, error)

	State() (*GameState, error)
}
