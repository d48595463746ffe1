// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/fairway/internal/domain/types"
	"github.com/okian/fairway/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Standings computes the board; errors are configuration or roster
	// failures.
	Standings(ctx context.Context) (types.Standings, error)

	// TournamentName returns the current event for page headers.
	TournamentName(ctx context.Context) types.Tournament
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	standingsHandler  *StandingsHandler
	tournamentHandler *TournamentHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		standingsHandler:  NewStandingsHandler(deps, log),
		tournamentHandler: NewTournamentHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/api/tournament", MetricsMiddleware(s.tournamentHandler.HandleGetTournament, "tournament"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, types.Error{Error: msg})
}

// allowGet rejects anything but GET and HEAD.
func allowGet(w http.ResponseWriter, r *http.Request, op string) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, http.StatusMethodNotAllowed, NewKind(op, ErrMethodNotAllowed))
	return false
}
