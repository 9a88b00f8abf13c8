package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hiremap/internal/lights"
)

// lampColor maps a lamp to its theme color.
func (m Model) lampColor(c lights.Color) string {
	switch c {
	case lights.Red:
		return m.theme.Danger
	case lights.Yellow:
		return m.theme.Warning
	default:
		return m.theme.Success
	}
}

// renderLight renders the traffic light housing with one row per lamp.
func (m Model) renderLight() string {
	lamps := make([]string, 0, len(lights.Colors()))
	for _, c := range lights.Colors() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
		glyph := "○"
		if m.light.IsLit(c) {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.lampColor(c))).Bold(true)
			glyph = "●"
		}
		lamps = append(lamps, style.Render(" "+glyph+" "))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(strings.Join(lamps, "\n\n"))
}

// renderSignals renders the traffic light pane.
func (m Model) renderSignals(width, height int) string {
	styles := m.theme.Styles()

	caption := "dark"
	if c, on := m.light.Lit(); on {
		caption = c.String()
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.renderLight(),
		"",
		styles.MutedText.Render(caption),
	)
	inner := lipgloss.Place(maxInt(width-2, 0), maxInt(height-2, 0), lipgloss.Center, lipgloss.Center, body)
	return m.renderTitledBox("Simple Signals", inner, width, height, true)
}
