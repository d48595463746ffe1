package api

import "net/http"

// TournamentHandler serves the current event name.
type TournamentHandler struct {
	deps Dependencies
}

// NewTournamentHandler creates a tournament handler.
func NewTournamentHandler(deps Dependencies) *TournamentHandler {
	return &TournamentHandler{deps: deps}
}

// HandleGetTournament handles GET /api/tournament.
func (h *TournamentHandler) HandleGetTournament(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, "api.tournament") {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TournamentName(r.Context()))
}
