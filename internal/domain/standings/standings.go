// Package standings reconciles the pool roster with a live leaderboard
// snapshot and produces the ordered board.
//
// The pipeline runs once per request over freshly loaded teams:
//
//	enrich -> backfill -> aggregate -> rank
//
// Teams and picks are mutated in place.
package standings

import "github.com/okian/fairway/internal/domain/model"

// Report summarises one reconciliation for logging and metrics.
type Report struct {
	MaxWeek        int
	ExactMatches   int
	SurnameMatches int
	Unmatched      int
	Backfilled     int
}

func (r *Report) count(k MatchKind) {
	switch k {
	case MatchExact:
		r.ExactMatches++
	case MatchSurname:
		r.SurnameMatches++
	default:
		r.Unmatched++
	}
}

// Result is the reconciled board.
type Result struct {
	Tournament string
	Teams      []*model.Team
	Report     Report
}

// Reconcile merges teams with snap and returns teams in final rank order.
// An empty snapshot is valid: standings then rest on finalized finishes
// and placeholders only.
func Reconcile(teams []*model.Team, snap model.Snapshot) Result {
	var report Report
	report.MaxWeek = MaxWeek(teams)

	ix := NewNameIndex(snap)
	tournament := Enrich(teams, ix, &report)
	report.Backfilled = Backfill(teams, report.MaxWeek, tournament)

	Aggregate(teams)
	ordered := Rank(teams, report.MaxWeek)

	return Result{
		Tournament: tournament,
		Teams:      ordered,
		Report:     report,
	}
}
