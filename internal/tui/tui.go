// internal/tui/tui.go
// Package tui provides the interactive Bubble Tea front end for the game.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/mwiater/parabolic/internal/appconfig"
	"github.com/mwiater/parabolic/internal/logging"
	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/mwiater/parabolic/internal/plot"
	"github.com/mwiater/parabolic/internal/session"
)

// Config represents the shared application configuration for the TUI.
type Config = appconfig.Config

const (
	// sidePanelWidth is the width reserved for the prompt, equations and help.
	sidePanelWidth = 44
	// chromeHeight is the number of rows used outside the plot.
	chromeHeight = 2
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	config  *Config
	session *session.Session
	score   session.Scoreboard
	plot    plot.Plot
	keys    keyMap
	help    help.Model

	width, height int
}

// initialModel creates a model with a fresh session drawn from gen.
func initialModel(cfg *Config, gen *parabola.Generator) *model {
	h := help.New()
	h.ShowAll = false

	return &model{
		config:  cfg,
		session: session.New(gen, session.WithShowEquation(cfg.ShowEquation)),
		plot:    plot.New(cfg.PlotRange(), 0, 0),
		keys:    defaultKeyMap(),
		help:    h,
	}
}

// Init implements tea.Model. The game has no background work.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = sidePanelWidth
		m.plot = m.plot.Resize(msg.Width-sidePanelWidth, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The verdict popup is modal: only confirmation gets through.
	if m.session.AwaitingAcknowledgement() {
		if key.Matches(msg, m.keys.Confirm) {
			m.session = m.session.Restart()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.session.Step(parabola.Left)
	case key.Matches(msg, m.keys.Right):
		m.session.Step(parabola.Right)
	case key.Matches(msg, m.keys.Up):
		m.session.Step(parabola.Up)
	case key.Matches(msg, m.keys.Down):
		m.session.Step(parabola.Down)
	case key.Matches(msg, m.keys.Wider):
		m.session.Step(parabola.Wider)
	case key.Matches(msg, m.keys.Narrower):
		m.session.Step(parabola.Narrower)
	case key.Matches(msg, m.keys.Undo):
		m.session.Undo()
	case key.Matches(msg, m.keys.Toggle):
		m.session.ToggleEquation()
	case key.Matches(msg, m.keys.Submit):
		m.score.Record(m.session.Submit())
	case key.Matches(msg, m.keys.Restart):
		m.session = m.session.Restart()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the plot beside the side panel, or the verdict popup when one is pending.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.session.Verdict != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.popupView(*m.session.Verdict))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.plot.Render(m.session.Current), m.sidePanelView())
}

// sidePanelView renders the prompt, target, helper equation, badges and key help.
func (m *model) sidePanelView() string {
	var b strings.Builder
	b.WriteString(promptStyle.Width(sidePanelWidth - 4).Render("Match the parabola on the graph as the equation shown below:"))
	b.WriteString("\n")
	b.WriteString(targetStyle.Render(m.session.TargetEquation()))
	b.WriteString("\n")
	if m.session.ShowEquation {
		b.WriteString(equationStyle.Render(m.session.Equation()))
	} else {
		b.WriteString(hiddenStyle.Render("(equation hidden, press e)"))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, renderScoreBadge(m.score), renderStepsBadge(m.session.Steps)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return panelStyle.Width(sidePanelWidth).Render(b.String())
}

// popupView renders the verdict dialog.
func (m *model) popupView(v parabola.Verdict) string {
	msgStyle := incorrectStyle
	if v.Correct() {
		msgStyle = correctStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		msgStyle.Render(v.Message),
		promptStyle.Render(fmt.Sprintf("Target: %s", m.session.TargetEquation())),
		promptStyle.Render(fmt.Sprintf("Yours:  %s", m.session.Equation())),
		buttonStyle.Render("OK"),
	)
	return dialogStyle.Render(body)
}

// StartGUI runs the interactive game until the player quits.
func StartGUI(cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("failed to start: configuration is not loaded")
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	gen := parabola.NewGenerator(parabola.NewSource(cfg.Seed))
	m := initialModel(cfg, gen)

	logging.LogEvent("starting game (graphRange=%d, seed=%d)", cfg.PlotRange(), cfg.Seed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logging.LogEvent("game finished: %s", m.score)
	return nil
}
