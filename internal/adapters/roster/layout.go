// Package roster reads the pool's standings spreadsheet into teams and picks.
package roster

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/fairway/internal/domain/model"
)

// Header and marker text used by the standings grid.
const (
	golferHeader  = "GOLFER"
	missedCutMark = "*"
)

// Layout locates the standings grid inside the worksheet. All indexes are
// zero-based.
//
// The grid looks like:
//
//	row TournamentRow: tournament names (merged across each block)
//	row HeaderRow:     GOLFER | CP | TP, repeated per tournament
//	rows DataStartRow+: one team per row, team name in NameCol
type Layout struct {
	TournamentRow int
	HeaderRow     int
	DataStartRow  int
	NameCol       int
}

// DefaultLayout matches the current season's sheet.
func DefaultLayout() Layout {
	return Layout{TournamentRow: 3, HeaderRow: 4, DataStartRow: 6, NameCol: 13}
}

type tournamentBlock struct {
	col  int // GOLFER column; CP sits one to the right
	name string
}

// ParseRows converts raw cell values into teams ordered by finalized
// points (stable). Weeks are numbered by tournament block, so a team with
// a blank golfer cell simply has no pick for that week.
func ParseRows(rows [][]string, layout Layout) ([]*model.Team, error) {
	if len(rows) <= layout.DataStartRow {
		return []*model.Team{}, nil
	}

	blocks := tournamentBlocks(cellsAt(rows, layout.HeaderRow), cellsAt(rows, layout.TournamentRow))
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no %s columns in header row %d", ErrUnexpectedLayout, golferHeader, layout.HeaderRow)
	}

	teams := make([]*model.Team, 0, len(rows)-layout.DataStartRow)
	for _, row := range rows[layout.DataStartRow:] {
		if len(row) <= layout.NameCol {
			continue
		}
		rawName := strings.TrimSpace(row[layout.NameCol])
		if rawName == "" {
			continue
		}

		team := &model.Team{
			Name:       strings.TrimSpace(strings.ReplaceAll(rawName, missedCutMark, "")),
			MissedCuts: strings.Count(rawName, missedCutMark),
			Picks:      []*model.Pick{},
		}
		for i, b := range blocks {
			golfer := cell(row, b.col)
			if golfer == "" {
				continue
			}
			p := &model.Pick{Week: i + 1, Tournament: b.name, Golfer: golfer}
			if n, err := strconv.Atoi(cell(row, b.col+1)); err == nil {
				p.Finish = &n
				team.TotalPoints += n
			}
			team.Picks = append(team.Picks, p)
		}
		teams = append(teams, team)
	}

	slices.SortStableFunc(teams, func(a, b *model.Team) int {
		return cmp.Compare(a.TotalPoints, b.TotalPoints)
	})
	return teams, nil
}

// tournamentBlocks finds GOLFER columns and names each block. Merged
// tournament cells only carry text in their first column, so an empty name
// falls back to the nearest non-empty cell to the left, then to "Week N".
func tournamentBlocks(header, names []string) []tournamentBlock {
	var blocks []tournamentBlock
	for col, v := range header {
		if strings.TrimSpace(v) != golferHeader {
			continue
		}
		name := ""
		for k := col; k >= 0; k-- {
			if name = cell(names, k); name != "" {
				break
			}
		}
		if name == "" {
			name = fmt.Sprintf("Week %d", len(blocks)+1)
		}
		blocks = append(blocks, tournamentBlock{col: col, name: name})
	}
	return blocks
}

func cellsAt(rows [][]string, i int) []string {
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
