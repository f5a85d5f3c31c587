package accordion

import "fmt"

// EventKind names a controller state change.
type EventKind string

const (
	EventSelectCategory EventKind = "select-category"
	EventExpand         EventKind = "expand"
	EventCollapse       EventKind = "collapse"
	EventExpandAll      EventKind = "expand-all"
	EventCollapseAll    EventKind = "collapse-all"
	EventPolicy         EventKind = "policy"
)

// Event describes a change applied by the Controller. Position is -1 for
// changes not tied to a single row.
type Event struct {
	Kind     EventKind
	Category string
	Previous string
	Position int
	Policy   Policy
	Expanded []int
}

// Describe renders the event for logs and the debug panel.
func (e Event) Describe() string {
	switch e.Kind {
	case EventSelectCategory:
		return fmt.Sprintf(`category:%q prev:%q expanded:%v`, e.Category, e.Previous, e.Expanded)
	case EventExpand, EventCollapse:
		return fmt.Sprintf(`category:%q position:%d expanded:%v`, e.Category, e.Position, e.Expanded)
	case EventPolicy:
		return fmt.Sprintf(`policy:%q expanded:%v`, e.Policy, e.Expanded)
	default:
		return fmt.Sprintf(`category:%q expanded:%v`, e.Category, e.Expanded)
	}
}
