// Package stats renders the counter cards above the accordion.
package stats

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/tui/theme"
)

// Card labels.
const (
	LabelTotal      = "Total Questions"
	LabelCategories = "Categories"
	LabelFiltered   = "Filtered Items"
)

// Model is a read-only projection of accordion.Stats.
type Model struct {
	stats  accordion.Stats
	width  int
	styles theme.StatsTheme
}

// New returns a stats panel with the given styles.
func New(styles theme.StatsTheme) Model {
	return Model{styles: styles}
}

// SetStats replaces the counters.
func (m *Model) SetStats(s accordion.Stats) {
	m.stats = s
}

// SetWidth sets the width used to decide between cards and a compact line.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders the cards side by side, or a single line when they do not fit.
func (m Model) View() string {
	cards := []string{
		m.card(m.stats.Total, LabelTotal),
		m.card(m.stats.Categories, LabelCategories),
		m.card(m.stats.Filtered, LabelFiltered),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if m.width == 0 || lipgloss.Width(row) <= m.width {
		return row
	}
	return m.styles.Label.Render(LabelTotal+": ") + m.styles.Value.Render(strconv.Itoa(m.stats.Total)) +
		m.styles.Label.Render("  "+LabelCategories+": ") + m.styles.Value.Render(strconv.Itoa(m.stats.Categories)) +
		m.styles.Label.Render("  "+LabelFiltered+": ") + m.styles.Value.Render(strconv.Itoa(m.stats.Filtered))
}

func (m Model) card(n int, label string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Value.Render(strconv.Itoa(n)),
		m.styles.Label.Render(label),
	)
	return m.styles.Card.Render(body)
}
