package domain

import (
	"context"
	"time"
)

// Provider fetches current conditions for a free-text location.
type Provider interface {
	CurrentWeather(ctx context.Context, location string) (WeatherRecord, error)
}

// LookupEvent describes one resolved search. It is published for analytics
// and never read back by the widget.
type LookupEvent struct {
	RequestID    string    `json:"request_id"`
	Query        string    `json:"query"`
	Status       Status    `json:"status"`
	Location     string    `json:"location,omitempty"`
	TemperatureC *float64  `json:"temperature_c,omitempty"`
	Condition    string    `json:"condition,omitempty"`
	Error        string    `json:"error,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewLookupEvent summarizes a resolved state.
func NewLookupEvent(state SearchState, at time.Time) LookupEvent {
	ev := LookupEvent{
		RequestID:  state.RequestID,
		Query:      state.Query,
		Status:     state.Status,
		Error:      state.ErrorMessage(),
		OccurredAt: at.UTC(),
	}
	if state.Result != nil {
		temp := state.Result.Temperature
		ev.Location = state.Result.Location
		ev.TemperatureC = &temp
		ev.Condition = state.Result.Condition
	}
	return ev
}

// LookupSink receives lookup events.
type LookupSink interface {
	Publish(ctx context.Context, event LookupEvent) error
}
