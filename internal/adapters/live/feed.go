package live

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/okian/fairway/internal/domain/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // shared codec

// UnknownTournament names the event when the feed has none.
const UnknownTournament = "Unknown Tournament"

const (
	unknownAthlete = "Unknown"
	unknownStatus  = "unknown"
)

type scoreboard struct {
	Events []event `json:"events"`
}

type event struct {
	Name         *string       `json:"name"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Status struct {
		Type struct {
			State string `json:"state"`
		} `json:"type"`
	} `json:"status"`
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	Athlete struct {
		DisplayName *string `json:"displayName"`
	} `json:"athlete"`
	Order      flexString  `json:"order"`
	Score      flexString  `json:"score"`
	Statistics []statistic `json:"statistics"`
	Linescores []linescore `json:"linescores"`
}

type statistic struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type linescore struct {
	Value flexString `json:"value"`
}

// flexString accepts a JSON string, number, or an object carrying
// displayValue. The feed switches between these as a round progresses.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*f = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case data[0] == '{':
		var obj struct {
			DisplayValue string `json:"displayValue"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*f = flexString(obj.DisplayValue)
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*f = flexString(data)
			return nil
		}
		*f = flexString(strconv.FormatFloat(n, 'f', -1, 64))
	}
	return nil
}

// eventName returns the first event's name, if there is an event.
func (sb scoreboard) eventName() (string, bool) {
	if len(sb.Events) == 0 {
		return "", false
	}
	if n := sb.Events[0].Name; n != nil {
		return *n, true
	}
	return UnknownTournament, true
}

// snapshot converts the first competition of the first event.
func (sb scoreboard) snapshot() model.Snapshot {
	snap := model.EmptySnapshot()
	name, ok := sb.eventName()
	if !ok || len(sb.Events[0].Competitions) == 0 {
		return snap
	}
	snap.Event = name

	comp := sb.Events[0].Competitions[0]
	status := comp.Status.Type.State
	if status == "" {
		status = unknownStatus
	}

	for _, c := range comp.Competitors {
		snap.Add(c.entry(name, status))
	}
	return snap
}

func (c competitor) entry(event, status string) model.LeaderboardEntry {
	e := model.LeaderboardEntry{
		Name:     unknownAthlete,
		Position: string(c.Order),
		Score:    string(c.Score),
		Status:   status,
		Event:    event,
	}
	if c.Athlete.DisplayName != nil {
		e.Name = *c.Athlete.DisplayName
	}

	for _, st := range c.Statistics {
		switch st.Name {
		case "scoreToPar":
			if e.Score == "" {
				e.Score = st.DisplayValue
			}
		case "currentRoundScore":
			e.Today = st.DisplayValue
		case "thru":
			e.Thru = st.DisplayValue
		}
	}

	if e.Today == "" && len(c.Linescores) > 0 {
		e.Today = string(c.Linescores[len(c.Linescores)-1].Value)
	}
	return e
}
