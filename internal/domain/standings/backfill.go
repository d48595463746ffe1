package standings

import (
	"fmt"
	"strconv"

	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/internal/domain/scoring"
)

// NoPickGolfer is the golfer label written on synthesized placeholder picks.
const NoPickGolfer = "NO PICK"

// missedCutScore is shown as the live score of a placeholder pick.
const missedCutScore = "MC"

// MaxWeek returns the highest week number across all picks, or 0.
func MaxWeek(teams []*model.Team) int {
	maxWeek := 0
	for _, t := range teams {
		for _, p := range t.Picks {
			if p.Week > maxWeek {
				maxWeek = p.Week
			}
		}
	}
	return maxWeek
}

// Backfill appends a no-pick placeholder for maxWeek to every team that has
// no pick for that week, and returns how many were added. tournament labels
// the placeholder; when empty a "Week N" label is used.
func Backfill(teams []*model.Team, maxWeek int, tournament string) int {
	if maxWeek <= 0 {
		return 0
	}
	if tournament == "" {
		tournament = fmt.Sprintf("Week %d", maxWeek)
	}

	added := 0
	for _, t := range teams {
		if t.PickForWeek(maxWeek) != nil {
			continue
		}
		t.Picks = append(t.Picks, &model.Pick{
			Week:       maxWeek,
			Tournament: tournament,
			Golfer:     NoPickGolfer,
			NoPick:     true,
			Live: &model.LiveStats{
				Position: strconv.Itoa(scoring.MissedCutPenalty),
				Score:    missedCutScore,
			},
		})
		added++
	}
	return added
}
