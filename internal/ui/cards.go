package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hiremap/internal/hiring"
	"github.com/five82/hiremap/internal/state"
)

const (
	errorPrefix   = "Error loading data: "
	noResultsText = "No results found."
	detailSep     = " • "
)

// badge is the fixed label and color for one entity kind. Badge colors do not
// follow the theme.
type badge struct {
	icon  string
	name  string
	color string
}

var badges = map[hiring.Kind]badge{
	hiring.KindCompany:       {icon: "🏢", name: "Company", color: "#4a90e2"},
	hiring.KindJobPosting:    {icon: "💼", name: "Job Posting", color: "#28a745"},
	hiring.KindPromise:       {icon: "🤝", name: "Promise", color: "#ffc107"},
	hiring.KindVouch:         {icon: "⭐", name: "Vouch", color: "#ff8c00"},
	hiring.KindPersonalVouch: {icon: "👤", name: "Personal Vouch", color: "#dc3545"},
}

// Label returns the badge text, e.g. "🏢 Company".
func (b badge) Label() string {
	return b.icon + " " + b.name
}

func badgeFor(kind hiring.Kind) badge {
	if b, ok := badges[kind]; ok {
		return b
	}
	return badge{name: titleCase(string(kind)), color: "#6c757d"}
}

// kindLabel returns the type selector label. The empty kind means all types.
func kindLabel(kind hiring.Kind) string {
	if kind == "" {
		return "All types"
	}
	return badgeFor(kind).name
}

// kindCycle lists the type selector options in order.
func kindCycle() []hiring.Kind {
	return append([]hiring.Kind{""}, hiring.Kinds()...)
}

func stepKind(current hiring.Kind, delta int) hiring.Kind {
	options := kindCycle()
	idx := 0
	for i, k := range options {
		if k == current {
			idx = i
			break
		}
	}
	return options[(idx+delta+len(options))%len(options)]
}

// renderCard renders one record as a bordered card of the given outer width.
func (m Model) renderCard(rec hiring.Record, width int) string {
	styles := m.theme.Styles()
	b := badgeFor(rec.Kind)
	inner := maxInt(width-4, 10) // border and padding

	badgeStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(b.color)).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 1)

	lines := []string{badgeStyle.Render(b.Label())}
	if rec.Parent != "" {
		lines = append(lines, styles.FaintText.Render(truncate(rec.Parent, inner)))
	}
	lines = append(lines, styles.Text.Bold(true).Render(rec.DisplayTitle()))
	if rec.Entity != nil {
		if details := hiring.Details(rec.Entity); len(details) > 0 {
			lines = append(lines, styles.MutedText.Render(strings.Join(details, detailSep)))
		}
		if desc := hiring.Description(rec.Entity); desc != "" {
			lines = append(lines, styles.Text.Render(desc))
		}
	}

	return styles.Card.
		BorderForeground(lipgloss.Color(b.color)).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// recordsContent renders the body of the hiring map below the controls.
func (m Model) recordsContent(width int) string {
	styles := m.theme.Styles()
	snap := m.snapshot

	switch snap.Phase {
	case state.PhaseFailed:
		msg := "unknown error"
		if snap.LastError != nil {
			msg = snap.LastError.Error()
		}
		return styles.DangerText.Render(errorPrefix + msg)
	case state.PhaseLoaded:
	default:
		return ""
	}
	if len(m.visible) == 0 {
		return styles.MutedText.Render(noResultsText)
	}

	cards := make([]string, 0, len(m.visible))
	for _, rec := range m.visible {
		cards = append(cards, m.renderCard(rec, width))
	}
	return strings.Join(cards, "\n")
}
