package standings

import (
	"cmp"
	"slices"

	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/internal/domain/scoring"
)

// Aggregate sets TotalPoints on every team.
func Aggregate(teams []*model.Team) {
	for _, t := range teams {
		t.TotalPoints = scoring.TeamTotal(t)
	}
}

// BaseRanks ranks teams by finalized points outside maxWeek, ascending,
// ties kept in input order. Ranks are 1-indexed.
func BaseRanks(teams []*model.Team, maxWeek int) map[*model.Team]int {
	type base struct {
		team   *model.Team
		points int
	}
	bases := make([]base, len(teams))
	for i, t := range teams {
		bases[i] = base{team: t, points: scoring.BaseTotal(t, maxWeek)}
	}
	slices.SortStableFunc(bases, func(a, b base) int {
		return cmp.Compare(a.points, b.points)
	})

	ranks := make(map[*model.Team]int, len(bases))
	for i, b := range bases {
		ranks[b.team] = i + 1
	}
	return ranks
}

// Rank returns teams ordered by TotalPoints ascending (stable) and sets
// RankChange to base rank minus final rank. Aggregate must run first.
func Rank(teams []*model.Team, maxWeek int) []*model.Team {
	baseRanks := BaseRanks(teams, maxWeek)

	ordered := make([]*model.Team, len(teams))
	copy(ordered, teams)
	slices.SortStableFunc(ordered, func(a, b *model.Team) int {
		return cmp.Compare(a.TotalPoints, b.TotalPoints)
	})

	for i, t := range ordered {
		current := i + 1
		previous, ok := baseRanks[t]
		if !ok {
			previous = current
		}
		t.RankChange = previous - current
	}
	return ordered
}
