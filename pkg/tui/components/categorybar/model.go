// Package categorybar renders the category filter buttons.
package categorybar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/tui/events"
	"tableflip.dev/faq/pkg/tui/theme"
	"tableflip.dev/faq/pkg/tui/ui"
)

// AllLabel is the button text for faq.AllCategories.
const AllLabel = "All Categories"

// KeyMap binds category cycling.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next category"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab/h", "prev category"),
		),
	}
}

// Model shows one button per category option. The active option is set by
// the owner; the bar only emits CategorySelectMsg.
type Model struct {
	id      events.ComponentID
	options []string
	active  int
	width   int
	keys    KeyMap
	styles  theme.CategoryTheme
}

// New constructs a bar over options, which should start with
// faq.AllCategories.
func New(id events.ComponentID, options []string, styles theme.CategoryTheme) *Model {
	return &Model{
		id:      id,
		options: append([]string(nil), options...),
		keys:    DefaultKeyMap(),
		styles:  styles,
	}
}

// Keys returns the bindings for help rendering.
func (m *Model) Keys() KeyMap { return m.keys }

// SetActive highlights category. Unknown categories are ignored.
func (m *Model) SetActive(category string) {
	for i, opt := range m.options {
		if opt == category {
			m.active = i
			return
		}
	}
}

// Active returns the highlighted category.
func (m *Model) Active() string {
	if len(m.options) == 0 {
		return faq.AllCategories
	}
	return m.options[m.active]
}

// SetSize records the width buttons wrap at.
func (m *Model) SetSize(width, _ int) {
	m.width = width
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update turns cycling keys into a CategorySelectMsg for the neighbor option.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.options) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Next):
		return m, m.selectAt(m.active + 1)
	case key.Matches(keyMsg, m.keys.Prev):
		return m, m.selectAt(m.active - 1)
	}
	return m, nil
}

func (m *Model) selectAt(i int) tea.Cmd {
	n := len(m.options)
	i = ((i % n) + n) % n
	return events.CategorySelectCmd(m.id, m.options[i])
}

// View renders the buttons, wrapping onto more lines when narrow.
func (m *Model) View() string {
	var rows []string
	var row []string
	rowWidth := 0
	for i, opt := range m.options {
		label := opt
		if opt == faq.AllCategories {
			label = AllLabel
		}
		style := m.styles.Button
		if i == m.active {
			style = m.styles.Active
		}
		btn := style.Render(label)
		w := lipgloss.Width(btn)
		if m.width > 0 && rowWidth > 0 && rowWidth+w > m.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, btn)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
