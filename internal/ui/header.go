package ui

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/five82/hiremap/internal/panes"
)

// contentHeight is the height left for the active pane after the header and
// footer rows.
func (m Model) contentHeight() int {
	return maxInt(m.height-2, 3)
}

// renderHeader renders the logo and the tab bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("hiremap", styles.Logo)}
	for i, p := range m.panes.Panes() {
		label := string(rune('1'+i)) + " " + p.Label
		if m.panes.IsActive(p.ID) {
			parts = append(parts, styles.ActiveTab.Render(label))
			continue
		}
		parts = append(parts, styles.Tab.Render(label))
	}

	parts = append(parts, bg.Render("T", styles.AccentText)+bg.Render(":"+m.theme.Name, styles.FaintText))
	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// renderContent renders the active pane.
func (m Model) renderContent() string {
	width, height := m.width, m.contentHeight()
	switch m.panes.Active().ID {
	case panes.Signals:
		return m.renderSignals(width, height)
	case panes.Hiring:
		return m.renderHiring(width, height)
	default:
		return m.renderOverview(width, height)
	}
}

// renderOverview renders the landing pane.
func (m Model) renderOverview(width, height int) string {
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	source := m.sourceLabel
	if source == "" {
		source = "not configured"
	}

	records := "not loaded yet"
	if m.snapshot.HasRecords() {
		records = plural(len(m.snapshot.Records), "record") + " cached"
	}

	lines := []string{
		bg.Render("A map of hiring signals: companies, the jobs they post, the promises", styles.Text),
		bg.Render("made in those postings and the vouches behind them.", styles.Text),
		"",
		bg.Render("Source ", styles.FaintText) + bg.Render(truncate(source, maxInt(width-12, 10)), styles.MutedText),
		bg.Render("Records", styles.FaintText) + bg.Space() + bg.Render(records, styles.MutedText),
		"",
		bg.Render("2", styles.AccentText) + bg.Space() + bg.Render("Simple Signals shows the traffic light.", styles.MutedText),
		bg.Render("3", styles.AccentText) + bg.Space() + bg.Render("Hiring Map loads the document and lets you search it.", styles.MutedText),
	}
	return m.renderTitledBox("Overview", strings.Join(lines, "\n"), width, height, true)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
