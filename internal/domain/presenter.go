package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Static widget copy.
const (
	WidgetTitle       = "Weather Widget"
	WidgetDescription = "Search for the current weather conditions in your city."
	InputPlaceholder  = "Enter a city name"

	buttonSearch  = "Search"
	buttonLoading = "Loading..."
)

// View is everything a front end needs to draw the widget. The three panel
// sentences are set only when Status is StatusSuccess.
type View struct {
	Query          string `json:"query"`
	Status         Status `json:"status"`
	ButtonLabel    string `json:"button_label"`
	ButtonDisabled bool   `json:"button_disabled"`
	Error          string `json:"error,omitempty"`

	Temperature string         `json:"temperature,omitempty"`
	Condition   string         `json:"condition,omitempty"`
	Location    string         `json:"location,omitempty"`
	Record      *WeatherRecord `json:"record,omitempty"`
}

// Presenter renders SearchStates. The hour used for day/night phrasing is
// read from clock at render time, in loc.
type Presenter struct {
	clock clockwork.Clock
	loc   *time.Location
}

// NewPresenter creates a Presenter. A nil clock uses real time; a nil
// location uses the process's local zone.
func NewPresenter(clock clockwork.Clock, loc *time.Location) *Presenter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Presenter{clock: clock, loc: loc}
}

// CurrentHour returns the viewer's wall-clock hour.
func (p *Presenter) CurrentHour() int {
	return p.clock.Now().In(p.loc).Hour()
}

// Render maps a state to its view.
func (p *Presenter) Render(state SearchState) View {
	v := View{
		Query:       state.Query,
		Status:      state.Status,
		ButtonLabel: buttonSearch,
		Error:       state.ErrorMessage(),
	}
	if state.Status == StatusLoading {
		v.ButtonLabel = buttonLoading
		v.ButtonDisabled = true
	}
	if state.Status == StatusSuccess && state.Result != nil {
		rec := *state.Result
		v.Record = &rec
		v.Temperature = PhraseTemperature(rec.Temperature, rec.Unit)
		v.Condition = PhraseCondition(rec.Condition)
		v.Location = PhraseLocation(rec.Location, p.CurrentHour())
	}
	return v
}
