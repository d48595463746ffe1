package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStandingsJSON(t *testing.T) {
	Convey("Given a board with a finished and a live pick", t, func() {
		finish := 3
		board := types.Standings{
			Tournament: "The Masters",
			Teams: []*model.Team{{
				Name: "Birdies",
				Picks: []*model.Pick{
					{Week: 1, Tournament: "Players", Golfer: "Scheffler", Finish: &finish},
					{Week: 2, Tournament: "The Masters", Golfer: "Rahm", Live: &model.LiveStats{Position: "T5", Score: "-4"}},
				},
				TotalPoints: 8,
				RankChange:  -1,
			}},
		}

		raw, err := json.Marshal(board)
		So(err, ShouldBeNil)

		var out map[string]any
		So(json.Unmarshal(raw, &out), ShouldBeNil)

		Convey("Then the envelope should carry tournament and teams", func() {
			So(out["tournament"], ShouldEqual, "The Masters")
			So(out["teams"], ShouldHaveLength, 1)
		})

		Convey("Then teams should expose totals and movement", func() {
			team := out["teams"].([]any)[0].(map[string]any)
			So(team["team"], ShouldEqual, "Birdies")
			So(team["total_points"], ShouldEqual, float64(8))
			So(team["rank_change"], ShouldEqual, float64(-1))
		})

		Convey("Then an open pick should have a null finish and live fields", func() {
			picks := out["teams"].([]any)[0].(map[string]any)["picks"].([]any)
			finished := picks[0].(map[string]any)
			open := picks[1].(map[string]any)

			So(finished["finish"], ShouldEqual, float64(3))
			So(finished, ShouldNotContainKey, "live")
			So(open["finish"], ShouldBeNil)
			So(open["live"].(map[string]any)["position"], ShouldEqual, "T5")
		})
	})

	Convey("Given an empty board", t, func() {
		raw, err := json.Marshal(types.Standings{Teams: []*model.Team{}})
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `{"tournament":"","teams":[]}`)
	})

	Convey("Given an error body", t, func() {
		raw, err := json.Marshal(types.Error{Error: "sheet not configured"})
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `{"error":"sheet not configured"}`)
	})
}
