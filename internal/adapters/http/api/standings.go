package api

import (
	"net/http"

	"github.com/okian/fairway/pkg/logger"
)

// StandingsHandler serves the reconciled board.
type StandingsHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewStandingsHandler creates a standings handler.
func NewStandingsHandler(deps Dependencies, log logger.Logger) *StandingsHandler {
	return &StandingsHandler{deps: deps, logger: log}
}

// HandleGetStandings handles GET /api/standings. Any failure to build the
// board is reported as a 500 with an error body.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.standings"
	if !allowGet(w, r, op) {
		return
	}

	board, err := h.deps.Standings(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "standings request failed", logger.Error(Wrap(op, ErrStandings, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}
