package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the style definitions for the widget.
type Styles struct {
	Card        lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Input       lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Error       lipgloss.Style
	TempPanel   lipgloss.Style
	CondPanel   lipgloss.Style
	LocPanel    lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a Styles instance with default values.
func NewStyles() *Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(56)

	return &Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")).
			Padding(0, 2).
			MarginLeft(1),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("75")).
			Padding(0, 2).
			MarginLeft(1),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")), // red
		TempPanel: panel.BorderForeground(lipgloss.Color("33")),                      // blue
		CondPanel: panel.BorderForeground(lipgloss.Color("220")),                     // yellow
		LocPanel:  panel.BorderForeground(lipgloss.Color("78")),                      // green
		Help:      lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
