// internal/tui/styles.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/parabolic/internal/session"
)

var (
	panelStyle    = lipgloss.NewStyle().Padding(0, 2)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	targetStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1).MarginTop(1)
	equationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).MarginTop(1)
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).MarginTop(1)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 4).
			Align(lipgloss.Center)
	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40"))
	incorrectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	buttonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")).Padding(0, 2).MarginTop(1)
)

// renderScoreBadge returns a Lipgloss-styled badge for the running tally.
func renderScoreBadge(score session.Scoreboard) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	return badgeStyle.Render(fmt.Sprintf("Score: %s", score))
}

// renderStepsBadge returns a Lipgloss-styled badge for the step count of the current round.
func renderStepsBadge(steps int) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render(fmt.Sprintf("Steps: %d", steps))
}
