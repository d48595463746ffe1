package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/internal/domain/types"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newStandingsCommand(env *runtimeEnv) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Compute the current standings once and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch output {
			case outputTable, outputJSON:
			default:
				return fmt.Errorf("unknown output %q: want %s or %s", output, outputTable, outputJSON)
			}

			board, err := env.newService().Standings(cmd.Context())
			if err != nil {
				return err
			}
			if output == outputJSON {
				return writeStandingsJSON(cmd.OutOrStdout(), board)
			}
			return writeStandingsTable(cmd.OutOrStdout(), board)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func writeStandingsJSON(w io.Writer, board types.Standings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(board)
}

func writeStandingsTable(w io.Writer, board types.Standings) error {
	if board.Tournament != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", board.Tournament); err != nil {
			return err
		}
	}

	table := tablewriter.NewTable(w)
	table.Header("#", "Team", "Move", "Points", "Current Pick", "Pos", "Score", "Thru")
	for i, t := range board.Teams {
		pick := currentPick(t)
		row := []any{
			strconv.Itoa(i + 1),
			t.Name + strings.Repeat("*", t.MissedCuts),
			movement(t.RankChange),
			strconv.Itoa(t.TotalPoints),
			"", "", "", "",
		}
		if pick != nil {
			row[4] = pick.Golfer
			if pick.HasFinish() {
				row[5] = strconv.Itoa(*pick.Finish)
			}
			if pick.Live != nil {
				if !pick.HasFinish() {
					row[5] = pick.Live.Position
				}
				row[6] = pick.Live.Score
				row[7] = pick.Live.Thru
			}
		}
		if err := table.Append(row...); err != nil {
			return err
		}
	}
	return table.Render()
}

// currentPick is the team's pick for its latest week.
func currentPick(t *model.Team) *model.Pick {
	var latest *model.Pick
	for _, p := range t.Picks {
		if latest == nil || p.Week > latest.Week {
			latest = p
		}
	}
	return latest
}

func movement(n int) string {
	switch {
	case n > 0:
		return "+" + strconv.Itoa(n)
	case n < 0:
		return strconv.Itoa(n)
	default:
		return "-"
	}
}
