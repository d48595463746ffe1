// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/fairway/internal/adapters/live"
	"github.com/okian/fairway/internal/adapters/roster"
	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/internal/domain/standings"
	"github.com/okian/fairway/internal/domain/types"
	"github.com/okian/fairway/pkg/logger"
	"github.com/okian/fairway/pkg/metrics"
)

// RosterSource loads the pool's teams and picks.
type RosterSource interface {
	LoadTeams(ctx context.Context, sheetID string) ([]*model.Team, error)
}

// LiveSource provides the in-progress leaderboard. Implementations degrade
// to an empty snapshot instead of failing.
type LiveSource interface {
	Snapshot(ctx context.Context) model.Snapshot
	EventName(ctx context.Context) string
}

// Service computes standings on demand. Every call loads fresh data; only
// monitoring counters survive between calls.
type Service struct {
	roster  RosterSource
	live    LiveSource
	sheetID string
	logger  logger.Logger

	mu             sync.RWMutex
	computed       int64
	failed         int64
	lastTournament string
	lastTeams      int
	lastComputedAt time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSheetID sets the roster spreadsheet id.
func WithSheetID(id string) Option {
	return func(s *Service) {
		s.sheetID = id
	}
}

// WithRosterSource replaces the roster source.
func WithRosterSource(r RosterSource) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithLiveSource replaces the live leaderboard source.
func WithLiveSource(l LiveSource) Option {
	return func(s *Service) {
		if l != nil {
			s.live = l
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without explicit sources it reads the default
// Google Sheet layout and the ESPN scoreboard.
func New(opts ...Option) *Service {
	s := &Service{logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.roster == nil {
		s.roster = roster.NewSheetsSource(roster.WithLogger(s.logger))
	}
	if s.live == nil {
		s.live = live.NewESPNClient(live.WithLogger(s.logger))
	}
	return s
}

// Standings loads the roster, then the live leaderboard, and reconciles
// them. Roster and configuration failures are returned; live failures
// only thin out the result.
func (s *Service) Standings(ctx context.Context) (types.Standings, error) {
	if s.sheetID == "" {
		s.recordFailure()
		metrics.RecordRosterError("not_configured")
		s.logger.Error(ctx, "standings unavailable", logger.Error(ErrSheetNotConfigured))
		return types.Standings{}, ErrSheetNotConfigured
	}

	start := time.Now()
	teams, err := s.roster.LoadTeams(ctx, s.sheetID)
	if err != nil {
		s.recordFailure()
		metrics.RecordRosterError(roster.Kind(err))
		s.logger.Error(ctx, "roster load failed", logger.Error(err))
		return types.Standings{}, fmt.Errorf("load roster: %w", err)
	}
	metrics.RecordRosterLoad(float64(time.Since(start).Milliseconds()))

	snap := s.live.Snapshot(ctx)
	res := standings.Reconcile(teams, snap)

	metrics.RecordPickMatches("exact", res.Report.ExactMatches)
	metrics.RecordPickMatches("surname", res.Report.SurnameMatches)
	metrics.RecordPickMatches("unmatched", res.Report.Unmatched)
	metrics.RecordPicksBackfilled(res.Report.Backfilled)
	metrics.RecordStandingsComputed(len(res.Teams))

	s.logger.Info(ctx, "standings computed",
		logger.Int("teams", len(res.Teams)),
		logger.String("tournament", res.Tournament),
		logger.Int("max_week", res.Report.MaxWeek),
		logger.Int("live_entries", snap.Len()),
		logger.Int("exact", res.Report.ExactMatches),
		logger.Int("surname", res.Report.SurnameMatches),
		logger.Int("unmatched", res.Report.Unmatched),
		logger.Int("backfilled", res.Report.Backfilled),
		logger.Duration("took", time.Since(start)),
	)

	s.mu.Lock()
	s.computed++
	s.lastTournament = res.Tournament
	s.lastTeams = len(res.Teams)
	s.lastComputedAt = time.Now()
	s.mu.Unlock()

	return types.Standings{Tournament: res.Tournament, Teams: res.Teams}, nil
}

// TournamentName returns the current live event name.
func (s *Service) TournamentName(ctx context.Context) types.Tournament {
	return types.Tournament{Name: s.live.EventName(ctx)}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"sheetConfigured":   s.sheetID != "",
		"standingsComputed": s.computed,
		"standingsFailed":   s.failed,
		"lastTournament":    s.lastTournament,
		"lastTeams":         s.lastTeams,
	}
	if !s.lastComputedAt.IsZero() {
		stats["lastComputedAt"] = s.lastComputedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

func (s *Service) recordFailure() {
	s.mu.Lock()
	s.failed++
	s.mu.Unlock()
}
