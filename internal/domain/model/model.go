// Package model contains domain models passed between layers.
package model

import (
	"sort"
	"strings"
)

// LiveStats holds the leaderboard fields attached to a pick during enrichment.
type LiveStats struct {
	Position string `json:"position"` // "5", "T5", or a status string
	Score    string `json:"score"`    // relative to par, e.g. "-5", "E", "+2"
	Today    string `json:"today"`
	Thru     string `json:"thru"`
	Status   string `json:"status"`
}

// Pick is a team's golfer selection for one week of the pool.
type Pick struct {
	Week       int    `json:"week"`
	Tournament string `json:"tournament"`
	Golfer     string `json:"golfer"` // as written in the roster, any casing
	Finish     *int   `json:"finish"` // nil until the tournament is final
	NoPick     bool   `json:"no_pick"`

	Live *LiveStats `json:"live,omitempty"`
}

// HasFinish reports whether the pick carries a finalized finish position.
func (p *Pick) HasFinish() bool { return p.Finish != nil }

// Team is one entrant in the pool.
type Team struct {
	Name       string  `json:"team"`
	Picks      []*Pick `json:"picks"`
	MissedCuts int     `json:"missed_cuts"`

	TotalPoints int `json:"total_points"`
	RankChange  int `json:"rank_change"`
}

// PickForWeek returns the first pick recorded for week, or nil.
func (t *Team) PickForWeek(week int) *Pick {
	for _, p := range t.Picks {
		if p.Week == week {
			return p
		}
	}
	return nil
}

// LeaderboardEntry is one contestant in a live tournament snapshot.
type LeaderboardEntry struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Score    string `json:"score"`
	Today    string `json:"today"`
	Thru     string `json:"thru"`
	Status   string `json:"status"`
	Event    string `json:"event"`
}

// Snapshot is a single in-progress tournament leaderboard keyed by
// lowercase full contestant name.
type Snapshot struct {
	Event   string
	Entries map[string]LeaderboardEntry

	// order keeps keys in feed order so that derived indexes resolve
	// collisions the same way on every run.
	order []string
}

// EmptySnapshot returns a snapshot with no entries and no event.
func EmptySnapshot() Snapshot {
	return Snapshot{Entries: map[string]LeaderboardEntry{}}
}

// Add stores e under its lowercase name. A repeated name replaces the
// earlier entry but keeps its original position.
func (s *Snapshot) Add(e LeaderboardEntry) {
	if s.Entries == nil {
		s.Entries = map[string]LeaderboardEntry{}
	}
	key := strings.ToLower(e.Name)
	if _, dup := s.Entries[key]; !dup {
		s.order = append(s.order, key)
	}
	s.Entries[key] = e
}

// Keys returns every entry key, in feed order when the snapshot was built
// with Add and sorted otherwise.
func (s Snapshot) Keys() []string {
	if len(s.order) == len(s.Entries) {
		return append([]string(nil), s.order...)
	}
	keys := make([]string, 0, len(s.Entries))
	for k := range s.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the entry stored under the lowercase key.
func (s Snapshot) Lookup(key string) (LeaderboardEntry, bool) {
	e, ok := s.Entries[key]
	return e, ok
}

// Len returns the number of contestants in the snapshot.
func (s Snapshot) Len() int { return len(s.Entries) }
