// Package web serves read-only views of tournament standings and reports.
// Data entry happens elsewhere; these endpoints only ever read a snapshot
// and render it, so any number of them can run at once.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dipscore"
	"dipscore/models"
	"dipscore/scoring"
)

// Server exposes tournaments from a StorageEngine over HTTP
type Server struct {
	engine models.StorageEngine
	log    *slog.Logger
	router *mux.Router
}

// NewServer creates a Server for the given storage engine
func NewServer(engine models.StorageEngine, log *slog.Logger) *Server {
	s := &Server{engine: engine, log: log, router: mux.NewRouter()}

	s.router.HandleFunc("/tournaments", s.handleTournaments).Methods(http.MethodGet)
	s.router.HandleFunc("/tournaments/{name}/standings", s.handleStandingsHTML).Methods(http.MethodGet)
	s.router.HandleFunc("/tournaments/{name}/best-countries", s.handleBestCountriesHTML).Methods(http.MethodGet)
	s.router.HandleFunc("/api/tournaments/{name}/standings", s.handleStandingsJSON).Methods(http.MethodGet)
	s.router.HandleFunc("/api/tournaments/{name}/best-countries", s.handleBestCountriesJSON).Methods(http.MethodGet)
	s.router.HandleFunc("/api/tournaments/{name}/games/{game}/result", s.handleGameResult).Methods(http.MethodGet)
	s.router.HandleFunc("/api/systems", s.handleSystems).Methods(http.MethodGet)
	s.router.Use(s.logRequests)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage404):
		status = http.StatusNotFound
	case errors.Is(err, scoring.ErrUnknownSystem),
		errors.Is(err, scoring.ErrNoPlayers),
		errors.Is(err, scoring.ErrNoCentreCounts),
		errors.Is(err, models.ErrInvalidGameState):
		status = http.StatusUnprocessableEntity
	}
	s.log.Error("request failed", "error", err, "status", status)
	http.Error(w, err.Error(), status)
}

// state fetches a tournament snapshot by name, distinguishing "no such
// tournament" from other failures
func (s *Server) state(name string) (*models.TournamentState, error) {
	t, err := s.engine.GetTournament(name)
	if err != nil {
		return nil, errors.Join(storage404, err)
	}
	return t.State()
}

var storage404 = errors.New("not found")

type tournamentInfo struct {
	Name                    string    `json:"name"`
	Start                   time.Time `json:"start"`
	End                     time.Time `json:"end"`
	TournamentScoringSystem string    `json:"tournament_scoring_system"`
	RoundScoringSystem      string    `json:"round_scoring_system"`
}

func (s *Server) handleTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := s.engine.GetTournaments()
	if err != nil {
		s.writeError(w, err)
		return
	}
	infos := make([]tournamentInfo, len(tournaments))
	for i, t := range tournaments {
		infos[i] = tournamentInfo{
			Name:                    t.GetName(),
			Start:                   t.StartDate(),
			End:                     t.EndDate(),
			TournamentScoringSystem: t.TournamentScoringSystem(),
			RoundScoringSystem:      t.RoundScoringSystem(),
		}
	}
	s.writeJSON(w, infos)
}

func (s *Server) handleStandingsHTML(w http.ResponseWriter, r *http.Request) {
	state, err := s.state(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	html, err := dipscore.GenerateStandingsHTML(state)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

type standingRow struct {
	Rank     int     `json:"rank,omitempty"`
	Unranked bool    `json:"unranked,omitempty"`
	Player   string  `json:"player"`
	Score    float64 `json:"score"`
}

func (s *Server) handleStandingsJSON(w http.ResponseWriter, r *http.Request) {
	state, err := s.state(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	standings, err := scoring.ComputeStandings(state)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rows := make([]standingRow, len(standings.Players))
	for i, p := range standings.Players {
		rows[i] = standingRow{Player: p.Player.String(), Score: p.Score}
		if p.Unranked {
			rows[i].Unranked = true
		} else {
			rows[i].Rank = p.Rank
		}
	}
	s.writeJSON(w, rows)
}

func criterionFrom(r *http.Request) scoring.Criterion {
	if c := r.URL.Query().Get("criterion"); c != "" {
		return scoring.Criterion(c)
	}
	return scoring.BestByCount
}

func (s *Server) handleBestCountriesHTML(w http.ResponseWriter, r *http.Request) {
	state, err := s.state(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	html, err := dipscore.GenerateBestCountriesHTML(state, criterionFrom(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

type performanceRow struct {
	Player string  `json:"player"`
	Game   string  `json:"game"`
	Round  int     `json:"round"`
	Count  int     `json:"count"`
	Score  float64 `json:"score"`
}

func (s *Server) handleBestCountriesJSON(w http.ResponseWriter, r *http.Request) {
	state, err := s.state(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	best, err := scoring.BestCountries(state, criterionFrom(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make(map[models.Power][]performanceRow, len(best))
	for power, perfs := range best {
		rows := make([]performanceRow, len(perfs))
		for i, p := range perfs {
			rows[i] = performanceRow{
				Player: p.Player.String(),
				Game:   p.Game,
				Round:  p.Round,
				Count:  p.Count,
				Score:  p.Score,
			}
		}
		out[power] = rows
	}
	s.writeJSON(w, out)
}

func (s *Server) handleGameResult(w http.ResponseWriter, r *http.Request) {
	state, err := s.state(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	gameName := mux.Vars(r)["game"]
	for _, round := range state.Rounds {
		for i := range round.Games {
			if round.Games[i].Name != gameName {
				continue
			}
			result, err := dipscore.ResultString(&round.Games[i])
			if err != nil {
				s.writeError(w, err)
				return
			}
			s.writeJSON(w, map[string]string{"game": gameName, "result": result})
			return
		}
	}
	http.Error(w, "no such game", http.StatusNotFound)
}

func (s *Server) handleSystems(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string][]string{
		"game":       scoring.GameSystemNames(),
		"round":      scoring.RoundSystemNames(),
		"tournament": scoring.TournamentSystemNames(),
	})
}
