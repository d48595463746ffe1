package roster_test

import (
	"errors"
	"testing"

	"github.com/okian/fairway/internal/adapters/roster"
	. "github.com/smartystreets/goconvey/convey"
)

var compact = roster.Layout{TournamentRow: 0, HeaderRow: 1, DataStartRow: 2, NameCol: 0}

func grid() [][]string {
	return [][]string{
		{"", "The Masters", "", "", "PGA Championship", "", ""},
		{"TEAM", "GOLFER", "CP", "TP", "GOLFER", "CP", "TP"},
		{"Birdies*", "Scheffler", "3", "3", "McIlroy", "", ""},
		{"Eagles", "Matsuyama", "1", "1", "", "", ""},
		{"", "Ghost", "9", "9"},
		{"Bogeys**", "Rahm", "T5"},
	}
}

func TestParseRows(t *testing.T) {
	Convey("Given a standings grid", t, func() {
		teams, err := roster.ParseRows(grid(), compact)
		So(err, ShouldBeNil)

		Convey("Then rows without a team name should be skipped", func() {
			So(teams, ShouldHaveLength, 3)
		})

		Convey("Then teams should be ordered by finalized points", func() {
			So(teams[0].Name, ShouldEqual, "Bogeys")
			So(teams[1].Name, ShouldEqual, "Eagles")
			So(teams[2].Name, ShouldEqual, "Birdies")
			So(teams[2].TotalPoints, ShouldEqual, 3)
		})

		Convey("Then missed-cut markers should be counted and stripped", func() {
			So(teams[0].MissedCuts, ShouldEqual, 2)
			So(teams[2].MissedCuts, ShouldEqual, 1)
			So(teams[1].MissedCuts, ShouldEqual, 0)
		})

		Convey("Then blank golfer cells should produce no pick", func() {
			So(teams[1].Picks, ShouldHaveLength, 1)
			So(teams[1].Picks[0].Week, ShouldEqual, 1)
		})

		Convey("Then picks should carry week, tournament and finish", func() {
			birdies := teams[2]
			So(birdies.Picks, ShouldHaveLength, 2)
			So(birdies.Picks[0].Tournament, ShouldEqual, "The Masters")
			So(*birdies.Picks[0].Finish, ShouldEqual, 3)
			So(birdies.Picks[1].Week, ShouldEqual, 2)
			So(birdies.Picks[1].Tournament, ShouldEqual, "PGA Championship")
			So(birdies.Picks[1].HasFinish(), ShouldBeFalse)
		})

		Convey("Then a non-numeric finish should leave the pick open", func() {
			So(teams[0].Picks[0].Golfer, ShouldEqual, "Rahm")
			So(teams[0].Picks[0].HasFinish(), ShouldBeFalse)
		})
	})

	Convey("Given merged tournament cells", t, func() {
		rows := [][]string{
			{"Open", "", "", ""},
			{"", "GOLFER", "CP", "TP"},
			{"Pars", "Fleetwood", "2", "2"},
		}
		layout := roster.Layout{TournamentRow: 0, HeaderRow: 1, DataStartRow: 2, NameCol: 0}

		teams, err := roster.ParseRows(rows, layout)
		So(err, ShouldBeNil)
		So(teams[0].Picks[0].Tournament, ShouldEqual, "Open")
	})

	Convey("Given a grid with no tournament names", t, func() {
		rows := [][]string{
			{},
			{"", "GOLFER", "CP", "GOLFER", "CP"},
			{"Pars", "Fleetwood", "", "Lowry", ""},
		}

		teams, err := roster.ParseRows(rows, compact)
		So(err, ShouldBeNil)
		So(teams[0].Picks[0].Tournament, ShouldEqual, "Week 1")
		So(teams[0].Picks[1].Tournament, ShouldEqual, "Week 2")
	})

	Convey("Given a sheet shorter than the data start row", t, func() {
		teams, err := roster.ParseRows([][]string{{"x"}}, roster.DefaultLayout())
		So(err, ShouldBeNil)
		So(teams, ShouldNotBeNil)
		So(teams, ShouldBeEmpty)
	})

	Convey("Given a header row without GOLFER columns", t, func() {
		rows := [][]string{{}, {"TEAM", "PLAYER"}, {"Pars", "Lowry"}}

		_, err := roster.ParseRows(rows, compact)
		So(errors.Is(err, roster.ErrUnexpectedLayout), ShouldBeTrue)
		So(roster.Kind(err), ShouldEqual, "layout")
	})
}
