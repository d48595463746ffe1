package scoring_test

import (
	"testing"

	"github.com/okian/fairway/internal/domain/model"
	scoring "github.com/okian/fairway/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func TestParsePosition(t *testing.T) {
	Convey("Given live position strings", t, func() {
		Convey("When the position is a plain integer", func() {
			n, ok := scoring.ParsePosition("12")
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 12)
		})

		Convey("When the position is tie-marked", func() {
			n, ok := scoring.ParsePosition("T5")
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 5)
		})

		Convey("When the position has surrounding whitespace", func() {
			n, ok := scoring.ParsePosition(" T17 ")
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 17)
		})

		Convey("When the position is a status string", func() {
			for _, s := range []string{"CUT", "WD", "DQ", "", "T", "TT5", "5T"} {
				_, ok := scoring.ParsePosition(s)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestPickPoints(t *testing.T) {
	Convey("Given picks in different states", t, func() {
		Convey("When the pick is a no-pick placeholder", func() {
			p := &model.Pick{NoPick: true, Live: &model.LiveStats{Position: "70", Score: "MC"}}
			So(scoring.PickPoints(p), ShouldEqual, scoring.MissedCutPenalty)
			So(scoring.PickPoints(p), ShouldEqual, 70)
		})

		Convey("When the pick has a finish and live data", func() {
			p := &model.Pick{Finish: intPtr(24), Live: &model.LiveStats{Position: "T3"}}
			So(scoring.PickPoints(p), ShouldEqual, 24)
		})

		Convey("When the pick only has a live position", func() {
			p := &model.Pick{Live: &model.LiveStats{Position: "T5"}}
			So(scoring.PickPoints(p), ShouldEqual, 5)
		})

		Convey("When the live position does not parse", func() {
			p := &model.Pick{Live: &model.LiveStats{Position: "CUT"}}
			So(scoring.PickPoints(p), ShouldEqual, 0)
		})

		Convey("When the pick has nothing attached", func() {
			So(scoring.PickPoints(&model.Pick{Golfer: "ZZZNOTFOUND"}), ShouldEqual, 0)
		})
	})
}

func TestTotals(t *testing.T) {
	Convey("Given a team with finished, live and missing picks", t, func() {
		team := &model.Team{
			Name: "A",
			Picks: []*model.Pick{
				{Week: 1, Finish: intPtr(10)},
				{Week: 2, Finish: intPtr(20)},
				{Week: 3, Finish: intPtr(4), Live: &model.LiveStats{Position: "1"}},
				{Week: 3, Live: &model.LiveStats{Position: "T8"}},
			},
		}

		Convey("Then TeamTotal should sum every contribution", func() {
			So(scoring.TeamTotal(team), ShouldEqual, 10+20+4+8)
		})

		Convey("And BaseTotal should skip the excluded week entirely", func() {
			So(scoring.BaseTotal(team, 3), ShouldEqual, 30)
		})

		Convey("And BaseTotal with no excluded week should use finishes only", func() {
			So(scoring.BaseTotal(team, 0), ShouldEqual, 34)
		})
	})
}
