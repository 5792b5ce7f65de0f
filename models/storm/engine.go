// Package storm provides a StorageEngine backed by a storm database.
// All of the game-state validation happens here, on the way in, so that
// everything handed to the scoring engine is already consistent.
package storm

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/asdine/storm"
	"github.com/asdine/storm/codec/msgpack"
	"github.com/asdine/storm/q"
	"github.com/rs/xid"

	"dipscore/models"
	"dipscore/scoring"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = storm.ErrNotFound

type tournamentRecord struct {
	ID               int    `storm:"id,increment"`
	Name             string `storm:"unique"`
	Start            time.Time
	End              time.Time
	TournamentSystem string
	RoundSystem      string
}

type playerRecord struct {
	ID        int    `storm:"id,increment"`
	Key       string `storm:"unique"`
	FirstName string
	LastName  string
}

type tournamentPlayerRecord struct {
	ID           int `storm:"id,increment"`
	TournamentID int `storm:"index"`
	PlayerID     int
	UUID         string
	Score        float64
	Unranked     bool
}

type roundRecord struct {
	ID           int `storm:"id,increment"`
	TournamentID int `storm:"index"`
	Number       int
	GameSystem   string
	DIAS         bool
	FinalYear    int
}

type roundPlayerRecord struct {
	ID       int `storm:"id,increment"`
	RoundID  int `storm:"index"`
	PlayerID int
	Score    float64
}

type gameRecord struct {
	ID        int    `storm:"id,increment"`
	RoundID   int    `storm:"index"`
	Name      string `storm:"unique"`
	StartedAt time.Time
	Finished  bool
}

type gamePlayerRecord struct {
	ID          int `storm:"id,increment"`
	GameID      int `storm:"index"`
	PlayerID    int
	Power       models.Power
	FirstYear   int
	FirstSeason models.Season
	LastYear    int
	LastSeason  models.Season
	Score       float64
}

type centreCountRecord struct {
	ID     int `storm:"id,increment"`
	GameID int `storm:"index"`
	Power  models.Power
	Year   int
	Count  int
}

type drawProposalRecord struct {
	ID       int `storm:"id,increment"`
	GameID   int `storm:"index"`
	Year     int
	Season   models.Season
	Proposer models.Power
	Passed   bool
	Powers   []models.Power
}

func playerKey(firstName, lastName string) string {
	return lastName + "|" + firstName
}

type engine struct {
	*storm.DB
}

// NewStorageEngine creates and returns a StorageEngine meeting the engine
// interface, using a storm db backend
func NewStorageEngine(path string) (models.StorageEngine, error) {
	db, err := storm.Open(path, storm.Codec(msgpack.Codec))
	if err != nil {
		return nil, fmt.Errorf("unable to open storage engine: %w", err)
	}
	return &engine{db}, nil
}

func (e *engine) Close() error {
	return e.DB.Close()
}

func (e *engine) CreateTournament(name string, start, end time.Time, tournamentScoring, roundScoring string) (models.Tournament, error) {
	if _, err := scoring.TournamentSystem(tournamentScoring); err != nil {
		return nil, err
	}
	if _, err := scoring.RoundSystem(roundScoring); err != nil {
		return nil, err
	}
	rec := tournamentRecord{
		Name:             name,
		Start:            start,
		End:              end,
		TournamentSystem: tournamentScoring,
		RoundSystem:      roundScoring,
	}
	if err := e.Save(&rec); err != nil {
		return nil, fmt.Errorf("unable to create tournament %q: %w", name, err)
	}
	return &tournament{rec, e.DB}, nil
}

func (e *engine) GetTournament(name string) (models.Tournament, error) {
	var rec tournamentRecord
	if err := e.One("Name", name, &rec); err != nil {
		return nil, fmt.Errorf("getting tournament %q: %w", name, err)
	}
	return &tournament{rec, e.DB}, nil
}

func (e *engine) GetTournaments() ([]models.Tournament, error) {
	var recs []tournamentRecord
	if err := e.All(&recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting tournaments: %w", err)
	}
	tournaments := make([]models.Tournament, len(recs))
	for i, rec := range recs {
		tournaments[i] = &tournament{rec, e.DB}
	}
	return tournaments, nil
}

func (e *engine) CreatePlayer(firstName, lastName string) (models.Player, error) {
	rec := playerRecord{Key: playerKey(firstName, lastName), FirstName: firstName, LastName: lastName}
	if err := e.Save(&rec); err != nil {
		return models.Player{}, fmt.Errorf("unable to create player %s %s: %w", firstName, lastName, err)
	}
	return models.Player{FirstName: firstName, LastName: lastName}, nil
}

func (e *engine) GetPlayers() ([]models.Player, error) {
	var recs []playerRecord
	if err := e.All(&recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting players: %w", err)
	}
	players := make([]models.Player, len(recs))
	for i, rec := range recs {
		players[i] = models.Player{FirstName: rec.FirstName, LastName: rec.LastName}
	}
	return players, nil
}

func lookupPlayer(db *storm.DB, p models.Player) (playerRecord, error) {
	var rec playerRecord
	if err := db.One("Key", playerKey(p.FirstName, p.LastName), &rec); err != nil {
		return rec, fmt.Errorf("player %s is not known: %w", p, err)
	}
	return rec, nil
}

func playerByID(db *storm.DB, id int) (models.Player, error) {
	var rec playerRecord
	if err := db.One("ID", id, &rec); err != nil {
		return models.Player{}, fmt.Errorf("player id %d: %w", id, err)
	}
	return models.Player{FirstName: rec.FirstName, LastName: rec.LastName}, nil
}

type tournament struct {
	tournamentRecord
	db *storm.DB
}

func (t *tournament) GetName() string                 { return t.Name }
func (t *tournament) StartDate() time.Time            { return t.Start }
func (t *tournament) EndDate() time.Time              { return t.End }
func (t *tournament) TournamentScoringSystem() string { return t.TournamentSystem }
func (t *tournament) RoundScoringSystem() string      { return t.RoundSystem }

func (t *tournament) AddPlayer(player models.Player, unranked bool) (models.TournamentPlayer, error) {
	pr, err := lookupPlayer(t.db, player)
	if err != nil {
		return models.TournamentPlayer{}, err
	}
	var existing []tournamentPlayerRecord
	if err := t.db.Select(q.Eq("TournamentID", t.ID), q.Eq("PlayerID", pr.ID)).Find(&existing); err == nil {
		return models.TournamentPlayer{}, fmt.Errorf("%s is already in tournament %q", player, t.Name)
	}
	rec := tournamentPlayerRecord{
		TournamentID: t.ID,
		PlayerID:     pr.ID,
		UUID:         xid.New().String(),
		Unranked:     unranked,
	}
	if err := t.db.Save(&rec); err != nil {
		return models.TournamentPlayer{}, fmt.Errorf("adding %s to tournament %q: %w", player, t.Name, err)
	}
	return models.TournamentPlayer{Player: player, UUID: rec.UUID, Unranked: unranked}, nil
}

func (t *tournament) GetPlayers() ([]models.TournamentPlayer, error) {
	var recs []tournamentPlayerRecord
	if err := t.db.Find("TournamentID", t.ID, &recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting players for tournament %q: %w", t.Name, err)
	}
	players := make([]models.TournamentPlayer, 0, len(recs))
	for _, rec := range recs {
		p, err := playerByID(t.db, rec.PlayerID)
		if err != nil {
			return nil, err
		}
		players = append(players, models.TournamentPlayer{
			Player:   p,
			UUID:     rec.UUID,
			Score:    rec.Score,
			Unranked: rec.Unranked,
		})
	}
	return players, nil
}

func (t *tournament) AddRound(gameScoring string, dias bool, finalYear int) (models.Round, error) {
	if _, err := scoring.GameSystem(gameScoring); err != nil {
		return nil, err
	}
	if finalYear != 0 {
		if err := models.ValidateYear(finalYear); err != nil {
			return nil, err
		}
	}
	existing, err := t.GetRounds()
	if err != nil {
		return nil, err
	}
	rec := roundRecord{
		TournamentID: t.ID,
		Number:       len(existing) + 1,
		GameSystem:   gameScoring,
		DIAS:         dias,
		FinalYear:    finalYear,
	}
	if err := t.db.Save(&rec); err != nil {
		return nil, fmt.Errorf("adding round %d to tournament %q: %w", rec.Number, t.Name, err)
	}
	return &round{rec, t.ID, t.db}, nil
}

func (t *tournament) GetRounds() ([]models.Round, error) {
	var recs []roundRecord
	if err := t.db.Select(q.Eq("TournamentID", t.ID)).OrderBy("Number").Find(&recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting rounds for tournament %q: %w", t.Name, err)
	}
	rounds := make([]models.Round, len(recs))
	for i, rec := range recs {
		rounds[i] = &round{rec, t.ID, t.db}
	}
	return rounds, nil
}

func (t *tournament) State() (*models.TournamentState, error) {
	state := &models.TournamentState{
		Name:                    t.Name,
		TournamentScoringSystem: t.TournamentSystem,
		RoundScoringSystem:      t.RoundSystem,
	}
	players, err := t.GetPlayers()
	if err != nil {
		return nil, err
	}
	state.Players = players

	rounds, err := t.GetRounds()
	if err != nil {
		return nil, err
	}
	for _, r := range rounds {
		rs := models.RoundState{
			Number:            r.Number(),
			GameScoringSystem: r.GameScoringSystem(),
			DIAS:              r.IsDIAS(),
			FinalYear:         r.FinalYear(),
		}
		games, err := r.GetGames()
		if err != nil {
			return nil, err
		}
		for _, g := range games {
			gs, err := g.State()
			if err != nil {
				return nil, err
			}
			rs.Games = append(rs.Games, *gs)
		}
		state.Rounds = append(state.Rounds, rs)
	}
	return state, nil
}

func (t *tournament) SaveScores(tournamentScores map[models.Player]float64, roundScores map[int]map[models.Player]float64) error {
	var tps []tournamentPlayerRecord
	if err := t.db.Find("TournamentID", t.ID, &tps); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return fmt.Errorf("saving scores for tournament %q: %w", t.Name, err)
	}
	for _, tp := range tps {
		p, err := playerByID(t.db, tp.PlayerID)
		if err != nil {
			return err
		}
		if err := t.db.UpdateField(&tp, "Score", tournamentScores[p]); err != nil {
			return fmt.Errorf("saving tournament score for %s: %w", p, err)
		}
	}

	var rounds []roundRecord
	if err := t.db.Find("TournamentID", t.ID, &rounds); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return fmt.Errorf("saving scores for tournament %q: %w", t.Name, err)
	}
	for _, rr := range rounds {
		scores, ok := roundScores[rr.Number]
		if !ok {
			continue
		}
		for p, score := range scores {
			pr, err := lookupPlayer(t.db, p)
			if err != nil {
				return err
			}
			var rp roundPlayerRecord
			err = t.db.Select(q.Eq("RoundID", rr.ID), q.Eq("PlayerID", pr.ID)).First(&rp)
			switch {
			case errors.Is(err, storm.ErrNotFound):
				rp = roundPlayerRecord{RoundID: rr.ID, PlayerID: pr.ID, Score: score}
				if err := t.db.Save(&rp); err != nil {
					return fmt.Errorf("saving round %d score for %s: %w", rr.Number, p, err)
				}
			case err != nil:
				return fmt.Errorf("saving round %d score for %s: %w", rr.Number, p, err)
			default:
				if err := t.db.UpdateField(&rp, "Score", score); err != nil {
					return fmt.Errorf("saving round %d score for %s: %w", rr.Number, p, err)
				}
			}
		}
	}
	return nil
}

// requireTournamentPlayer checks that the player has been entered in the
// tournament the record belongs to
func requireTournamentPlayer(db *storm.DB, tournamentID int, player models.Player) (playerRecord, error) {
	pr, err := lookupPlayer(db, player)
	if err != nil {
		return pr, err
	}
	var tp tournamentPlayerRecord
	if err := db.Select(q.Eq("TournamentID", tournamentID), q.Eq("PlayerID", pr.ID)).First(&tp); err != nil {
		return pr, fmt.Errorf("%s is not yet in the tournament: %w", player, err)
	}
	return pr, nil
}

type round struct {
	roundRecord
	tournamentID int
	db           *storm.DB
}

func (r *round) Number() int               { return r.roundRecord.Number }
func (r *round) GameScoringSystem() string { return r.GameSystem }
func (r *round) IsDIAS() bool              { return r.DIAS }
func (r *round) FinalYear() int            { return r.roundRecord.FinalYear }

func (r *round) AddPlayer(player models.Player) error {
	pr, err := requireTournamentPlayer(r.db, r.tournamentID, player)
	if err != nil {
		return err
	}
	var existing roundPlayerRecord
	if err := r.db.Select(q.Eq("RoundID", r.ID), q.Eq("PlayerID", pr.ID)).First(&existing); err == nil {
		return fmt.Errorf("%s is already in round %d", player, r.roundRecord.Number)
	}
	rec := roundPlayerRecord{RoundID: r.ID, PlayerID: pr.ID}
	if err := r.db.Save(&rec); err != nil {
		return fmt.Errorf("adding %s to round %d: %w", player, r.roundRecord.Number, err)
	}
	return nil
}

func (r *round) GetPlayers() ([]models.RoundPlayer, error) {
	var recs []roundPlayerRecord
	if err := r.db.Find("RoundID", r.ID, &recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting players for round %d: %w", r.roundRecord.Number, err)
	}
	players := make([]models.RoundPlayer, 0, len(recs))
	for _, rec := range recs {
		p, err := playerByID(r.db, rec.PlayerID)
		if err != nil {
			return nil, err
		}
		players = append(players, models.RoundPlayer{Player: p, Score: rec.Score})
	}
	return players, nil
}

func (r *round) CreateGame(name string, startedAt time.Time) (models.Game, error) {
	rec := gameRecord{RoundID: r.ID, Name: name, StartedAt: startedAt}
	if err := r.db.Save(&rec); err != nil {
		return nil, fmt.Errorf("creating game %q: %w", name, err)
	}
	g := &game{rec, r.roundRecord, r.tournamentID, r.db}
	// Seed the pre-game year so every game has a complete initial history
	for _, power := range models.GreatPowers() {
		cc := centreCountRecord{
			GameID: rec.ID,
			Power:  power,
			Year:   models.FirstYear - 1,
			Count:  power.StartingCentres(),
		}
		if err := r.db.Save(&cc); err != nil {
			return nil, fmt.Errorf("seeding centre counts for game %q: %w", name, err)
		}
	}
	return g, nil
}

func (r *round) GetGames() ([]models.Game, error) {
	var recs []gameRecord
	if err := r.db.Select(q.Eq("RoundID", r.ID)).OrderBy("Name").Find(&recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting games for round %d: %w", r.roundRecord.Number, err)
	}
	games := make([]models.Game, len(recs))
	for i, rec := range recs {
		games[i] = &game{rec, r.roundRecord, r.tournamentID, r.db}
	}
	return games, nil
}

type game struct {
	gameRecord
	round        roundRecord
	tournamentID int
	db           *storm.DB
}

func (g *game) GetName() string  { return g.Name }
func (g *game) IsFinished() bool { return g.Finished }

// requireOngoing rejects writes to a finished game. The history of a finished
// game is settled; letting anything in afterwards could invalidate its draw
// or its result.
func (g *game) requireOngoing() error {
	if g.Finished {
		return fmt.Errorf("%w: game %q is finished", models.ErrInvalidGameState, g.Name)
	}
	return nil
}

func (g *game) AddPlayer(player models.Player, power models.Power, firstYear int, firstSeason models.Season) error {
	if err := g.requireOngoing(); err != nil {
		return err
	}
	if !power.Valid() {
		return fmt.Errorf("%w: %s is not a great power", models.ErrInvalidGameState, power)
	}
	if !firstSeason.Valid() {
		return fmt.Errorf("%w: %s is not a season", models.ErrInvalidGameState, firstSeason)
	}
	if err := models.ValidateYear(firstYear); err != nil {
		return err
	}
	pr, err := requireTournamentPlayer(g.db, g.tournamentID, player)
	if err != nil {
		return err
	}
	gp := models.GamePlayer{Player: player, Power: power, FirstYear: firstYear, FirstSeason: firstSeason}
	others, err := g.GetPlayers()
	if err != nil {
		return err
	}
	for _, other := range others {
		if err := gp.CheckOverlap(other); err != nil {
			return err
		}
	}
	rec := gamePlayerRecord{
		GameID:      g.ID,
		PlayerID:    pr.ID,
		Power:       power,
		FirstYear:   firstYear,
		FirstSeason: firstSeason,
	}
	if err := g.db.Save(&rec); err != nil {
		return fmt.Errorf("adding %s to game %q: %w", player, g.Name, err)
	}
	return nil
}

func (g *game) EndPlayer(player models.Player, power models.Power, lastYear int, lastSeason models.Season) error {
	if err := g.requireOngoing(); err != nil {
		return err
	}
	if !lastSeason.Valid() {
		return fmt.Errorf("%w: %s is not a season", models.ErrInvalidGameState, lastSeason)
	}
	if err := models.ValidateYear(lastYear); err != nil {
		return err
	}
	pr, err := lookupPlayer(g.db, player)
	if err != nil {
		return err
	}
	var rec gamePlayerRecord
	if err := g.db.Select(q.Eq("GameID", g.ID), q.Eq("PlayerID", pr.ID), q.Eq("Power", power)).First(&rec); err != nil {
		return fmt.Errorf("%s is not playing %s in game %q: %w", player, power, g.Name, err)
	}
	if lastYear < rec.FirstYear || (lastYear == rec.FirstYear && lastSeason == models.Spring && rec.FirstSeason == models.Fall) {
		return fmt.Errorf("%w: %s cannot stop playing %s before starting", models.ErrInvalidGameState, player, power)
	}
	rec.LastYear = lastYear
	rec.LastSeason = lastSeason
	if err := g.db.Update(&rec); err != nil {
		return fmt.Errorf("ending %s's term as %s in game %q: %w", player, power, g.Name, err)
	}
	return nil
}

func (g *game) GetPlayers() ([]models.GamePlayer, error) {
	var recs []gamePlayerRecord
	if err := g.db.Find("GameID", g.ID, &recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting players for game %q: %w", g.Name, err)
	}
	players := make([]models.GamePlayer, 0, len(recs))
	for _, rec := range recs {
		p, err := playerByID(g.db, rec.PlayerID)
		if err != nil {
			return nil, err
		}
		players = append(players, models.GamePlayer{
			Player:      p,
			Power:       rec.Power,
			FirstYear:   rec.FirstYear,
			FirstSeason: rec.FirstSeason,
			LastYear:    rec.LastYear,
			LastSeason:  rec.LastSeason,
			Score:       rec.Score,
		})
	}
	return players, nil
}

func (g *game) SetCentreCounts(year int, counts map[models.Power]int) error {
	if err := g.requireOngoing(); err != nil {
		return err
	}
	if err := models.ValidateYear(year); err != nil {
		return err
	}
	if g.round.FinalYear != 0 && year > g.round.FinalYear {
		return fmt.Errorf("%w: games in this round end with %d", models.ErrInvalidGameState, g.round.FinalYear)
	}
	for power, count := range counts {
		if !power.Valid() {
			return fmt.Errorf("%w: %s is not a great power", models.ErrInvalidGameState, power)
		}
		if err := models.ValidateSCCount(count); err != nil {
			return err
		}
		var prev centreCountRecord
		err := g.db.Select(q.Eq("GameID", g.ID), q.Eq("Power", power), q.Eq("Year", year-1)).First(&prev)
		if err == nil {
			next := models.CentreCount{Power: power, Year: year, Count: count}
			prevCC := models.CentreCount{Power: power, Year: prev.Year, Count: prev.Count}
			if err := models.ValidateCentreCountStep(prevCC, next); err != nil {
				return err
			}
		}
		// A missing previous year just means counts were skipped - let that go
	}
	finished := false
	for power, count := range counts {
		var rec centreCountRecord
		err := g.db.Select(q.Eq("GameID", g.ID), q.Eq("Power", power), q.Eq("Year", year)).First(&rec)
		switch {
		case errors.Is(err, storm.ErrNotFound):
			rec = centreCountRecord{GameID: g.ID, Power: power, Year: year, Count: count}
			if err := g.db.Save(&rec); err != nil {
				return fmt.Errorf("saving centre count for %s in game %q: %w", power, g.Name, err)
			}
		case err != nil:
			return fmt.Errorf("saving centre count for %s in game %q: %w", power, g.Name, err)
		default:
			if err := g.db.UpdateField(&rec, "Count", count); err != nil {
				return fmt.Errorf("saving centre count for %s in game %q: %w", power, g.Name, err)
			}
		}
		if count >= models.WinningSCs {
			// Somebody won the game
			finished = true
		}
	}
	if g.round.FinalYear != 0 && year == g.round.FinalYear {
		// Final game year has been played
		finished = true
	}
	if finished && !g.Finished {
		g.Finished = true
		if err := g.db.UpdateField(&g.gameRecord, "Finished", true); err != nil {
			return fmt.Errorf("finishing game %q: %w", g.Name, err)
		}
	}
	return nil
}

func (g *game) CentreCounts() ([]models.CentreCount, error) {
	var recs []centreCountRecord
	if err := g.db.Find("GameID", g.ID, &recs); err != nil && !errors.Is(err, storm.ErrNotFound) {
		return nil, fmt.Errorf("getting centre counts for game %q: %w", g.Name, err)
	}
	counts := make([]models.CentreCount, len(recs))
	for i, rec := range recs {
		counts[i] = models.CentreCount{Power: rec.Power, Year: rec.Year, Count: rec.Count}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Year != counts[j].Year {
			return counts[i].Year < counts[j].Year
		}
		return counts[i].Power < counts[j].Power
	})
	return counts, nil
}

func (g *game) AddDrawProposal(proposal models.DrawProposal) error {
	if err := g.requireOngoing(); err != nil {
		return err
	}
	if !proposal.Season.Valid() {
		return fmt.Errorf("%w: %s is not a season", models.ErrInvalidGameState, proposal.Season)
	}
	if err := models.ValidateYear(proposal.Year); err != nil {
		return err
	}
	counts, err := g.CentreCounts()
	if err != nil {
		return err
	}
	finalYear := counts[len(counts)-1].Year
	var finalCounts []models.CentreCount
	for _, cc := range counts {
		if cc.Year == finalYear {
			finalCounts = append(finalCounts, cc)
		}
	}
	if err := proposal.Validate(finalCounts, g.round.DIAS); err != nil {
		return err
	}
	if proposal.Passed {
		var existing drawProposalRecord
		err := g.db.Select(q.Eq("GameID", g.ID), q.Eq("Passed", true)).First(&existing)
		if err == nil {
			return fmt.Errorf("%w: game already has a successful draw proposal", models.ErrInvalidGameState)
		}
		if !errors.Is(err, storm.ErrNotFound) {
			return fmt.Errorf("checking draw proposals for game %q: %w", g.Name, err)
		}
	}
	rec := drawProposalRecord{
		GameID:   g.ID,
		Year:     proposal.Year,
		Season:   proposal.Season,
		Proposer: proposal.Proposer,
		Passed:   proposal.Passed,
		Powers:   proposal.Powers,
	}
	if err := g.db.Save(&rec); err != nil {
		return fmt.Errorf("saving draw proposal for game %q: %w", g.Name, err)
	}
	if proposal.Passed && !g.Finished {
		// A passed draw ends the game
		g.Finished = true
		if err := g.db.UpdateField(&g.gameRecord, "Finished", true); err != nil {
			return fmt.Errorf("finishing game %q: %w", g.Name, err)
		}
	}
	return nil
}

func (g *game) PassedDraw() (*models.DrawProposal, error) {
	var rec drawProposalRecord
	err := g.db.Select(q.Eq("GameID", g.ID), q.Eq("Passed", true)).First(&rec)
	if errors.Is(err, storm.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting passed draw for game %q: %w", g.Name, err)
	}
	return &models.DrawProposal{
		Year:     rec.Year,
		Season:   rec.Season,
		Proposer: rec.Proposer,
		Passed:   rec.Passed,
		Powers:   rec.Powers,
	}, nil
}

func (g *game) State() (*models.GameState, error) {
	counts, err := g.CentreCounts()
	if err != nil {
		return nil, err
	}
	draw, err := g.PassedDraw()
	if err != nil {
		return nil, err
	}
	players, err := g.GetPlayers()
	if err != nil {
		return nil, err
	}
	return &models.GameState{
		Name:         g.Name,
		Finished:     g.Finished,
		CentreCounts: counts,
		Draw:         draw,
		Players:      players,
	}, nil
}
