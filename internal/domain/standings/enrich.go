package standings

import "github.com/okian/fairway/internal/domain/model"

// Enrich attaches live fields to every pick that resolves through ix, in
// every week. Picks with a finalized finish are enriched too; their finish
// still takes precedence when scoring. It returns the event name of the
// last matched entry, or "" when nothing matched.
func Enrich(teams []*model.Team, ix *NameIndex, report *Report) string {
	tournament := ""
	for _, t := range teams {
		for _, p := range t.Picks {
			e, kind := ix.Resolve(p.Golfer)
			report.count(kind)
			if kind == Unmatched {
				continue
			}
			p.Live = &model.LiveStats{
				Position: e.Position,
				Score:    e.Score,
				Today:    e.Today,
				Thru:     e.Thru,
				Status:   e.Status,
			}
			tournament = e.Event
		}
	}
	return tournament
}
