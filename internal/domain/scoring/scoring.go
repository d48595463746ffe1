// Package scoring turns picks into pool points. Lower totals are better.
package scoring

import (
	"strconv"
	"strings"

	"github.com/okian/fairway/internal/domain/model"
)

// MissedCutPenalty is charged for a pick that was never submitted.
const MissedCutPenalty = 70

// tieMarker prefixes shared positions on live leaderboards, e.g. "T5".
const tieMarker = "T"

// ParsePosition coerces a live position string into a finishing place.
// A single leading tie marker is stripped; anything else that is not an
// integer (e.g. "CUT", "WD", "") yields ok=false.
func ParsePosition(pos string) (place int, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(pos), tieMarker)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PickPoints returns what a single pick contributes to its team's total.
//
// Priority: no-pick placeholder, finalized finish, parsed live position.
// Everything else contributes nothing.
func PickPoints(p *model.Pick) int {
	switch {
	case p.NoPick:
		return MissedCutPenalty
	case p.Finish != nil:
		return *p.Finish
	case p.Live != nil:
		if n, ok := ParsePosition(p.Live.Position); ok {
			return n
		}
	}
	return 0
}

// TeamTotal sums PickPoints over every pick of the team.
func TeamTotal(t *model.Team) int {
	total := 0
	for _, p := range t.Picks {
		total += PickPoints(p)
	}
	return total
}

// BaseTotal sums finalized finishes only, skipping every pick of
// excludeWeek even when it already has a finish.
func BaseTotal(t *model.Team, excludeWeek int) int {
	total := 0
	for _, p := range t.Picks {
		if p.Week == excludeWeek || p.Finish == nil {
			continue
		}
		total += *p.Finish
	}
	return total
}
