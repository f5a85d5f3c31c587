package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ToggleMsg is emitted when the user activates a row header. Position is the
// row's index in the list the renderer was given.
type ToggleMsg struct {
	Component ComponentID
	Position  int
	EntryID   int
}

// Describe renders the toggle in a human-friendly format for logs.
func (m ToggleMsg) Describe() string {
	return fmt.Sprintf(`component:%q position:%d entry:%d`, m.Component, m.Position, m.EntryID)
}

// ToggleCmd wraps ToggleMsg into a tea.Cmd.
func ToggleCmd(component ComponentID, position, entryID int) tea.Cmd {
	return func() tea.Msg {
		return ToggleMsg{Component: component, Position: position, EntryID: entryID}
	}
}

// CategorySelectMsg is emitted when the user picks a category filter.
type CategorySelectMsg struct {
	Component ComponentID
	Category  string
}

// Describe renders the selection for logs.
func (m CategorySelectMsg) Describe() string {
	return fmt.Sprintf(`component:%q category:%q`, m.Component, m.Category)
}

// CategorySelectCmd wraps CategorySelectMsg into a tea.Cmd.
func CategorySelectCmd(component ComponentID, category string) tea.Cmd {
	return func() tea.Msg {
		return CategorySelectMsg{Component: component, Category: category}
	}
}

// BulkAction enumerates the expand/collapse-all controls.
type BulkAction string

const (
	// BulkExpand opens rows according to the expand policy.
	BulkExpand BulkAction = "expand-all"
	// BulkCollapse closes every row.
	BulkCollapse BulkAction = "collapse-all"
)

// BulkMsg requests an expand-all or collapse-all.
type BulkMsg struct {
	Component ComponentID
	Action    BulkAction
}

// Describe renders the request for logs.
func (m BulkMsg) Describe() string {
	return fmt.Sprintf(`component:%q action:%q`, m.Component, m.Action)
}

// Describer is implemented by messages that can summarize themselves for
// the debug event viewer.
type Describer interface {
	Describe() string
}
