package domain

import (
	"errors"
	"fmt"
)

// User-visible failure kinds. Adapter errors are logged and collapsed into
// ErrFetchFailure before they reach the widget.
var (
	ErrEmptyInput   = errors.New("Please enter a valid location.")     //nolint:staticcheck // rendered verbatim in the widget
	ErrFetchFailure = errors.New("City not found. Please try again.") //nolint:staticcheck // rendered verbatim in the widget
)

// UnitCelsius is the only unit the provider mapping produces.
const UnitCelsius = "C"

// WeatherRecord is the normalized snapshot of one successful lookup.
type WeatherRecord struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Location    string  `json:"location"`
	Unit        string  `json:"unit"`
}

// Status is the widget's position in the search state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name so JSON views stay readable.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name produced by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = StatusIdle
	case "loading":
		*s = StatusLoading
	case "success":
		*s = StatusSuccess
	case "error":
		*s = StatusError
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// SearchState is the widget's complete observable state.
// Result is non-nil only for StatusSuccess; Err is non-nil only for StatusError.
type SearchState struct {
	Query     string
	Status    Status
	Result    *WeatherRecord
	Err       error
	RequestID string
}

// IdleState is the state of a freshly mounted widget.
func IdleState() SearchState {
	return SearchState{Status: StatusIdle}
}

// LoadingState marks query as in flight under requestID. Any prior result
// and error are cleared.
func LoadingState(query, requestID string) SearchState {
	return SearchState{Query: query, Status: StatusLoading, RequestID: requestID}
}

// SuccessState records a completed lookup.
func SuccessState(query, requestID string, rec WeatherRecord) SearchState {
	return SearchState{Query: query, Status: StatusSuccess, Result: &rec, RequestID: requestID}
}

// ErrorState records a failed submit. err should be ErrEmptyInput or
// ErrFetchFailure.
func ErrorState(query, requestID string, err error) SearchState {
	return SearchState{Query: query, Status: StatusError, Err: err, RequestID: requestID}
}

// ErrorMessage returns the banner text, or "" when the state is not an error.
func (s SearchState) ErrorMessage() string {
	if s.Status != StatusError || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
