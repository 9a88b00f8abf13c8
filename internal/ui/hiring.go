package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/hiremap/internal/state"
)

// hiringChrome is the number of rows the hiring pane spends outside the card
// viewport: box borders, the controls row and the status row.
const hiringChrome = 4

// layout sizes the card viewport and search field for the current window.
func (m *Model) layout() {
	width := maxInt(m.width-4, 20)
	height := maxInt(m.contentHeight()-hiringChrome, 1)
	if m.cards.Width == 0 {
		m.cards = viewport.New(width, height)
	}
	m.cards.Width = width
	m.cards.Height = height
	m.search.Width = maxInt(width/2, 10)
	m.updateCards()
}

// updateCards re-renders the card list into the viewport.
func (m *Model) updateCards() {
	if m.cards.Width == 0 {
		return
	}
	m.cards.SetContent(m.recordsContent(m.cards.Width))
	m.cards.GotoTop()
}

// handleHiringKey processes keyboard input for the hiring map pane.
func (m Model) handleHiringKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.CycleKind):
		m.kind = stepKind(m.kind, 1)
		m.savePrefs()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleKindBack):
		m.kind = stepKind(m.kind, -1)
		m.savePrefs()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()

	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cards.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.cards.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.cards.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.cards.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.cards.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.cards.HalfViewUp()
	}

	return m, nil
}

// handleSearchInput routes keys to the search field and re-filters on every
// change.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// renderHiring renders the hiring map pane.
func (m Model) renderHiring(width, height int) string {
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	controls := m.search.View() + bg.Spaces(2) +
		bg.Render("Type:", styles.FaintText) + bg.Space() +
		bg.Render(kindLabel(m.kind), styles.AccentText)

	lines := []string{
		controls,
		m.renderHiringStatus(styles, bg),
		m.cards.View(),
	}
	return m.renderTitledBox("Hiring Map", strings.Join(lines, "\n"), width, height, true)
}

// renderHiringStatus renders the line between the controls and the cards.
func (m Model) renderHiringStatus(styles Styles, bg BgStyle) string {
	snap := m.snapshot
	switch snap.Phase {
	case state.PhaseLoading:
		return m.spinner.View() + bg.Space() + bg.Render("Loading records...", styles.WarningText)
	case state.PhaseFailed:
		return bg.Render("Load failed", styles.DangerText) + bg.Spaces(2) +
			bg.Render("r to retry", styles.FaintText)
	case state.PhaseLoaded:
		status := fmt.Sprintf("%s of %s records",
			humanize.Comma(int64(len(m.visible))), humanize.Comma(int64(len(snap.Records))))
		parts := []string{bg.Render(status, styles.MutedText)}
		if !snap.LoadedAt.IsZero() {
			parts = append(parts, bg.Render("loaded "+snap.LoadedAt.Format("15:04:05"), styles.FaintText))
		}
		if m.watching {
			parts = append(parts, bg.Render("watching", styles.AccentText))
		}
		return bg.Join(parts, "  ")
	default:
		return bg.Render("Not loaded", styles.FaintText)
	}
}

// renderTitledBox renders content inside a bordered box with the title
// embedded in the top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := maxInt(width-2, 0)
	titleWidth := lipgloss.Width(title)
	leftPad := maxInt((innerWidth-titleWidth-2)/2, 0)
	rightPad := maxInt(innerWidth-titleWidth-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bg.Color())

	contentLines := strings.Split(content, "\n")
	boxHeight := maxInt(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
