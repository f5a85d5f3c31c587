// Package accordion renders FAQ rows and reports toggle intent. It reads the
// open rows from its owner and never decides them itself.
package accordion

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/tui/events"
	"tableflip.dev/faq/pkg/tui/theme"
	"tableflip.dev/faq/pkg/tui/ui"
)

// KeyMap binds row navigation and toggling.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Jump   key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle row"),
		),
	}
}

// Model is the Bubble Tea accordion. Its own state is limited to the focus
// cursor and scroll position.
type Model struct {
	id       events.ComponentID
	items    []faq.Entry
	expanded map[int]bool
	focus    int

	width    int
	height   int
	viewport viewport.Model
	layout   Layout

	keys   KeyMap
	styles theme.AccordionTheme
}

// New constructs an empty accordion.
func New(id events.ComponentID, styles theme.AccordionTheme) *Model {
	m := &Model{
		id:       id,
		expanded: map[int]bool{},
		viewport: viewport.New(1, 1),
		keys:     DefaultKeyMap(),
		styles:   styles,
	}
	m.refresh()
	return m
}

// ID returns the component id carried on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Keys returns the bindings for help rendering.
func (m *Model) Keys() KeyMap { return m.keys }

// SetState replaces the rows and which positions are open. When the row set
// changes the focus moves to the first open row.
func (m *Model) SetState(items []faq.Entry, expanded []int) {
	changed := !sameIDs(m.items, items)
	m.items = append([]faq.Entry(nil), items...)
	m.expanded = make(map[int]bool, len(expanded))
	for _, p := range expanded {
		m.expanded[p] = true
	}
	if changed {
		m.focus = 0
		if len(expanded) > 0 {
			m.focus = expanded[0]
		}
		m.viewport.SetYOffset(0)
	}
	m.clampFocus()
	m.refresh()
}

// Focus returns the highlighted row, or -1 when the list is empty.
func (m *Model) Focus() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.focus
}

// SetSize updates the accordion dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.viewport.Width = m.width
	m.viewport.Height = m.height
	m.refresh()
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation keys and turns activations into ToggleMsg.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, m.toggle(m.focus)
	case key.Matches(keyMsg, m.keys.Jump):
		pos := int(keyMsg.String()[0] - '1')
		if pos < len(m.items) {
			m.focus = pos
			m.refresh()
			return m, m.toggle(pos)
		}
	}
	return m, nil
}

// View renders the visible part of the accordion.
func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) toggle(pos int) tea.Cmd {
	if pos < 0 || pos >= len(m.items) {
		return nil
	}
	return events.ToggleCmd(m.id, pos, m.items[pos].ID)
}

func (m *Model) moveFocus(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.focus += delta
	m.clampFocus()
	m.refresh()
}

func (m *Model) clampFocus() {
	if m.focus >= len(m.items) {
		m.focus = len(m.items) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

func (m *Model) refresh() {
	m.layout = Render(m.items, func(i int) bool { return m.expanded[i] }, m.Focus(), m.width, m.styles)
	m.viewport.SetContent(m.layout.Content)
	m.ensureFocusVisible()
}

func (m *Model) ensureFocusVisible() {
	f := m.Focus()
	if f < 0 || f >= len(m.layout.Offsets) {
		return
	}
	top := m.layout.Offsets[f]
	bottom := top + m.layout.Heights[f]
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		// keep the header on screen even when the answer is taller than the view
		m.viewport.SetYOffset(min(top, bottom-m.viewport.Height))
	}
}

func sameIDs(a, b []faq.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
