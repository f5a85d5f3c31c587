package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/tui/events"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg through Update and then runs any returned commands, feeding
// their messages back the way the Bubble Tea runtime would.
func send(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		if cmd == nil {
			continue
		}
		out := cmd()
		if batch, ok := out.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					queue = append(queue, c())
				}
			}
			continue
		}
		if _, quit := out.(tea.QuitMsg); quit {
			continue
		}
		queue = append(queue, out)
	}
}

func newModel(t *testing.T, policy accordion.Policy) *Model {
	t.Helper()
	m := New(faq.Default(), Options{Policy: policy})
	send(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

func TestInitialViewShowsStatsAndFirstAnswer(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)
	view := stripANSI(m.View())

	assert.Contains(t, view, Title)
	assert.Contains(t, view, "Total Questions")
	assert.Contains(t, view, "All Categories")
	assert.Contains(t, view, "React is a JavaScript library")
	assert.Contains(t, view, "Total Questions: 8 · Active Category: All Categories · Expanded: Yes")
}

func TestCategoryKeysFilterAndReset(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)

	send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	ctrl := m.Controller()
	assert.Equal(t, "Basics", ctrl.Category())
	assert.Equal(t, accordion.Stats{Total: 8, Categories: 7, Filtered: 2, Expanded: 1}, ctrl.Stats())
	assert.Equal(t, []int{0}, ctrl.ExpandedPositions())

	view := stripANSI(m.View())
	assert.Contains(t, view, "Active Category: Basics")
	assert.NotContains(t, view, "How do I handle forms in React?")

	send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, faq.AllCategories, ctrl.Category())
}

func TestToggleThroughKeys(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)
	ctrl := m.Controller()

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, ctrl.ExpandedPositions())
	assert.Contains(t, stripANSI(m.View()), "Expanded: None")

	send(t, m, keyRunes("j"))
	send(t, m, keyRunes(" "))
	assert.Equal(t, []int{1}, ctrl.ExpandedPositions())

	send(t, m, keyRunes("1"))
	assert.Equal(t, []int{0}, ctrl.ExpandedPositions())
}

func TestBulkKeys(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)
	ctrl := m.Controller()

	send(t, m, keyRunes("e"))
	assert.Equal(t, []int{7}, ctrl.ExpandedPositions())
	send(t, m, keyRunes("c"))
	assert.Empty(t, ctrl.ExpandedPositions())

	send(t, m, keyRunes("p"))
	assert.Equal(t, accordion.MultiPolicy, ctrl.Policy())
	send(t, m, keyRunes("e"))
	assert.Len(t, ctrl.ExpandedPositions(), 8)
	assert.Contains(t, stripANSI(m.View()), "policy: multi")
}

func TestToggleFromOtherComponentIgnored(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)
	send(t, m, events.ToggleMsg{Component: "elsewhere", Position: 3})
	assert.Equal(t, []int{0}, m.Controller().ExpandedPositions())

	send(t, m, events.CategorySelectMsg{Component: "x", Category: "Nope"})
	assert.Equal(t, faq.AllCategories, m.Controller().Category())
}

func TestHelpOverlay(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)

	send(t, m, keyRunes("?"))
	view := stripANSI(m.View())
	assert.Contains(t, view, "Quick Tips")

	// keys go to the overlay while it is open
	send(t, m, keyRunes("e"))
	assert.Equal(t, []int{0}, m.Controller().ExpandedPositions())

	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, stripANSI(m.View()), "Quick Tips")
}

func TestDebugViewerRecordsEvents(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)

	send(t, m, keyRunes("d"))
	send(t, m, keyRunes("c"))
	view := stripANSI(m.View())
	assert.Contains(t, view, "Events (")
	assert.Contains(t, view, "[controller] collapse-all")

	send(t, m, events.CategorySelectMsg{Component: categoryID, Category: "Nope"})
	assert.Contains(t, stripANSI(m.View()), "[controller] unknown category ignored")

	send(t, m, keyRunes("d"))
	assert.NotContains(t, stripANSI(m.View()), "Events (")
}

func TestQuit(t *testing.T) {
	m := newModel(t, accordion.SinglePolicy)
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEmptyCatalog(t *testing.T) {
	empty, err := faq.NewCatalog(nil)
	require.NoError(t, err)
	m := New(empty, Options{})
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	send(t, m, keyRunes("e"))

	view := stripANSI(m.View())
	assert.Contains(t, view, "No questions found for this category")
	assert.Contains(t, view, "Expanded: None")
}
