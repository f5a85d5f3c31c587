// Package accordion owns the FAQ view state: which category is selected and
// which rows of the filtered list are expanded. Renderers read from a
// Controller and report intent back to it; they never hold canonical state.
package accordion

import (
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/faq/pkg/faq"
)

// Policy selects how many rows may be open at once.
type Policy int

const (
	// SinglePolicy keeps at most one row open; opening a row closes the others.
	SinglePolicy Policy = iota
	// MultiPolicy lets any number of rows be open.
	MultiPolicy
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case SinglePolicy:
		return "single"
	case MultiPolicy:
		return "multi"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown expand policy")

// ParsePolicy maps a config value onto a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "single", "single-open":
		return SinglePolicy, nil
	case "multi", "multi-open":
		return MultiPolicy, nil
	}
	return SinglePolicy, fmt.Errorf("%w %q (want single or multi)", ErrUnknownPolicy, s)
}

// Stats are the counters shown alongside the accordion.
type Stats struct {
	Total      int `json:"total"`
	Categories int `json:"categories"`
	Filtered   int `json:"filtered"`
	Expanded   int `json:"expanded"`
}

// Observer receives every state change.
type Observer func(Event)

// Controller holds the selection and expansion state for one view.
type Controller struct {
	catalog  *faq.Catalog
	policy   Policy
	category string
	filtered []faq.Entry
	expanded map[int]struct{}
	observer Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithPolicy sets the expand policy.
func WithPolicy(p Policy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithObserver registers a change observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// New returns a controller showing every entry with the first one open.
func New(catalog *faq.Catalog, opts ...Option) *Controller {
	if catalog == nil {
		catalog, _ = faq.NewCatalog(nil)
	}
	c := &Controller{
		catalog:  catalog,
		category: faq.AllCategories,
		expanded: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.filtered = catalog.Filter(c.category)
	c.resetExpanded()
	return c
}

// Catalog returns the backing catalog.
func (c *Controller) Catalog() *faq.Catalog { return c.catalog }

// Policy returns the active expand policy.
func (c *Controller) Policy() Policy { return c.policy }

// Category returns the selected category (faq.AllCategories by default).
func (c *Controller) Category() string { return c.category }

// Filtered returns the entries visible under the selected category.
func (c *Controller) Filtered() []faq.Entry {
	return append([]faq.Entry(nil), c.filtered...)
}

// Len returns the size of the filtered list.
func (c *Controller) Len() int { return len(c.filtered) }

// Expanded reports whether the row at position is open.
func (c *Controller) Expanded(position int) bool {
	_, ok := c.expanded[position]
	return ok
}

// ExpandedPositions returns the open positions in ascending order.
func (c *Controller) ExpandedPositions() []int {
	out := make([]int, 0, len(c.expanded))
	for p := range c.expanded {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// ExpandedIndex returns the lowest open position, or false when every row
// is collapsed.
func (c *Controller) ExpandedIndex() (int, bool) {
	positions := c.ExpandedPositions()
	if len(positions) == 0 {
		return 0, false
	}
	return positions[0], true
}

// Stats projects the counters for the current state.
func (c *Controller) Stats() Stats {
	return Stats{
		Total:      c.catalog.Len(),
		Categories: len(c.catalog.Categories()),
		Filtered:   len(c.filtered),
		Expanded:   len(c.expanded),
	}
}

// SelectCategory switches the filter and opens the first row of the new
// list. Unknown categories are ignored and report false.
func (c *Controller) SelectCategory(category string) bool {
	if !c.catalog.HasCategory(category) {
		return false
	}
	prev := c.category
	c.category = category
	c.filtered = c.catalog.Filter(category)
	c.resetExpanded()
	c.emit(Event{Kind: EventSelectCategory, Category: category, Previous: prev, Position: -1})
	return true
}

// Toggle opens or closes the row at position. Under SinglePolicy opening a
// row closes any other. Out-of-range positions are ignored.
func (c *Controller) Toggle(position int) bool {
	if position < 0 || position >= len(c.filtered) {
		return false
	}
	kind := EventExpand
	if c.Expanded(position) {
		delete(c.expanded, position)
		kind = EventCollapse
	} else {
		if c.policy == SinglePolicy {
			c.clear()
		}
		c.expanded[position] = struct{}{}
	}
	c.emit(Event{Kind: kind, Category: c.category, Position: position})
	return true
}

// ExpandAll opens every row under MultiPolicy. Under SinglePolicy only one
// row can be open, so the last row of the list is opened.
func (c *Controller) ExpandAll() {
	c.clear()
	switch {
	case len(c.filtered) == 0:
	case c.policy == MultiPolicy:
		for i := range c.filtered {
			c.expanded[i] = struct{}{}
		}
	default:
		c.expanded[len(c.filtered)-1] = struct{}{}
	}
	c.emit(Event{Kind: EventExpandAll, Category: c.category, Position: -1})
}

// CollapseAll closes every row.
func (c *Controller) CollapseAll() {
	c.clear()
	c.emit(Event{Kind: EventCollapseAll, Category: c.category, Position: -1})
}

// SetPolicy changes the expand policy. Moving to SinglePolicy keeps only the
// lowest open row.
func (c *Controller) SetPolicy(p Policy) {
	if c.policy == p {
		return
	}
	c.policy = p
	if p == SinglePolicy {
		if first, ok := c.ExpandedIndex(); ok {
			c.clear()
			c.expanded[first] = struct{}{}
		}
	}
	c.emit(Event{Kind: EventPolicy, Category: c.category, Position: -1, Policy: p})
}

func (c *Controller) resetExpanded() {
	c.clear()
	if len(c.filtered) > 0 {
		c.expanded[0] = struct{}{}
	}
}

func (c *Controller) clear() {
	for k := range c.expanded {
		delete(c.expanded, k)
	}
}

func (c *Controller) emit(ev Event) {
	if c.observer == nil {
		return
	}
	ev.Expanded = c.ExpandedPositions()
	c.observer(ev)
}
