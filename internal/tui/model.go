package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/couchcryptid/weather-widget-service/internal/search"
)

// refreshInterval is how often the view is redrawn without input.
const refreshInterval = time.Minute

// Controller is the part of search.Controller the terminal widget uses.
type Controller interface {
	Begin(ctx context.Context, rawInput string) (*search.Request, domain.SearchState)
	Resolve(req *search.Request) domain.SearchState
	State() domain.SearchState
	Close()
}

// Model is the bubbletea model for the terminal weather widget.
type Model struct {
	ctx       context.Context
	ctl       Controller
	presenter *domain.Presenter
	styles    *Styles
	input     textinput.Model
	width     int
}

// NewModel creates the widget model. ctx bounds every provider request.
func NewModel(ctx context.Context, ctl Controller, presenter *domain.Presenter) *Model {
	ti := textinput.New()
	ti.Placeholder = domain.InputPlaceholder
	ti.CharLimit = 120
	ti.Width = 36
	ti.Focus()

	return &Model{
		ctx:       ctx,
		ctl:       ctl,
		presenter: presenter,
		styles:    NewStyles(),
		input:     ti,
	}
}

// Init starts the cursor blink and the refresh ticker.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.ctl.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}

	case searchResolvedMsg:
		return m, nil

	case tickMsg:
		return m, tick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a search unless one is already loading.
func (m *Model) submit() tea.Cmd {
	if m.ctl.State().Status == domain.StatusLoading {
		return nil
	}
	req, _ := m.ctl.Begin(m.ctx, m.input.Value())
	if req == nil {
		return nil
	}
	return m.resolve(req)
}

// resolve returns a command that performs the provider lookup.
func (m *Model) resolve(req *search.Request) tea.Cmd {
	return func() tea.Msg {
		m.ctl.Resolve(req)
		return searchResolvedMsg{}
	}
}

// View renders the widget.
func (m *Model) View() string {
	v := m.presenter.Render(m.ctl.State())
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render(domain.WidgetTitle))
	b.WriteString("\n")
	b.WriteString(s.Description.Render(domain.WidgetDescription))
	b.WriteString("\n")

	button := s.Button.Render(v.ButtonLabel)
	if v.ButtonDisabled {
		button = s.ButtonBusy.Render(v.ButtonLabel)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, s.Input.Render(m.input.View()), button))
	b.WriteString("\n")

	if v.Error != "" {
		b.WriteString(s.Error.Render(v.Error))
		b.WriteString("\n")
	}

	if v.Record != nil {
		b.WriteString(s.TempPanel.Render("🌡  " + v.Temperature))
		b.WriteString("\n")
		b.WriteString(s.CondPanel.Render("☁  " + v.Condition))
		b.WriteString("\n")
		b.WriteString(s.LocPanel.Render("📍 " + v.Location))
		b.WriteString("\n")
	}

	b.WriteString(s.Help.Render("enter: search • esc: quit"))

	return s.Card.Render(b.String())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
