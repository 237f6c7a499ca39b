package tui

import "time"

// searchResolvedMsg signals that a provider lookup finished. The controller
// owns the resulting state.
type searchResolvedMsg struct{}

// tickMsg re-renders the view so day/night phrasing follows the clock.
type tickMsg time.Time
