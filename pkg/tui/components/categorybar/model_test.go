package categorybar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/tui/events"
	"tableflip.dev/faq/pkg/tui/theme"
)

func newBar() *Model {
	return New("cats", faq.Default().CategoryOptions(), theme.Default().Category)
}

func selected(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(events.CategorySelectMsg)
	require.True(t, ok)
	assert.Equal(t, events.ComponentID("cats"), msg.Component)
	return msg.Category
}

func TestCyclingWraps(t *testing.T) {
	m := newBar()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Basics", selected(t, cmd))

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Testing", selected(t, cmd))

	m.SetActive("Testing")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, faq.AllCategories, selected(t, cmd))
}

func TestBarDoesNotMoveItself(t *testing.T) {
	m := newBar()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, faq.AllCategories, m.Active())

	m.SetActive("Forms")
	assert.Equal(t, "Forms", m.Active())
	m.SetActive("Unknown")
	assert.Equal(t, "Forms", m.Active())
}

func TestViewListsEveryOption(t *testing.T) {
	m := newBar()
	m.SetSize(40, 0)
	view := m.View()

	assert.Contains(t, view, AllLabel)
	for _, c := range faq.Default().Categories() {
		assert.Contains(t, view, c)
	}
	assert.Greater(t, strings.Count(view, "\n"), 0, "narrow bar should wrap")
}

func TestEmptyOptions(t *testing.T) {
	m := New("cats", nil, theme.Default().Category)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.Equal(t, faq.AllCategories, m.Active())
	assert.Equal(t, "", m.View())
}
