// Package site serves the standings page.
package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/okian/fairway/internal/domain/types"
)

// Error constants
var (
	ErrRender = errors.New("standings page render failed")
)

// TournamentProvider supplies the page header.
type TournamentProvider interface {
	TournamentName(ctx context.Context) types.Tournament
}

// Register attaches the standings page to mux at the exact root path.
func Register(_ context.Context, mux *http.ServeMux, deps TournamentProvider) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/{$}", NewRootHandler(deps))
}

// RootHandler renders the standings page shell. Standings themselves are
// fetched by the page from /api/standings.
type RootHandler struct {
	deps TournamentProvider
}

// NewRootHandler creates a new root handler
func NewRootHandler(deps TournamentProvider) *RootHandler {
	return &RootHandler{deps: deps}
}

type pageData struct {
	Tournament string
}

// ServeHTTP handles GET / requests.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	data := pageData{Tournament: h.deps.TournamentName(r.Context()).Name}
	if err := indexTemplate.Execute(&buf, data); err != nil {
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
