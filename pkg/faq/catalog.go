package faq

import (
	"errors"
	"fmt"
)

// AllCategories is the pseudo-category that selects every entry.
const AllCategories = "All"

var (
	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrInvalidEntry is returned when an entry is missing required text.
	ErrInvalidEntry = errors.New("invalid entry")
	// ErrUnknownCategory is returned by CheckCategory.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("entry not found")
)

// Catalog is the fixed, ordered collection of entries. It is built once and
// never mutated.
type Catalog struct {
	entries    []Entry
	categories []string
	byID       map[int]int
	counts     map[string]int
}

// NewCatalog validates the entries and precomputes the category set in
// first-occurrence order.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[int]int, len(entries)),
		counts:  make(map[string]int),
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[e.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, e.ID)
		}
		e.Tags = append([]string(nil), e.Tags...)
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
		if _, seen := c.counts[e.Category]; !seen {
			c.categories = append(c.categories, e.Category)
		}
		c.counts[e.Category]++
	}
	return c, nil
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every entry in original order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Categories returns the distinct categories in first-occurrence order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// CategoryOptions returns the filter set offered to users: All followed by
// the observed categories.
func (c *Catalog) CategoryOptions() []string {
	opts := make([]string, 0, len(c.categories)+1)
	opts = append(opts, AllCategories)
	return append(opts, c.categories...)
}

// HasCategory reports whether category is All or an observed category.
func (c *Catalog) HasCategory(category string) bool {
	if category == AllCategories {
		return true
	}
	_, ok := c.counts[category]
	return ok
}

// CheckCategory returns ErrUnknownCategory unless HasCategory(category).
func (c *Catalog) CheckCategory(category string) error {
	if c.HasCategory(category) {
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownCategory, category)
}

// Count returns how many entries carry the category.
func (c *Catalog) Count(category string) int {
	if category == AllCategories {
		return len(c.entries)
	}
	return c.counts[category]
}

// Lookup finds an entry by id.
func (c *Catalog) Lookup(id int) (Entry, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Filter returns the entries in category, preserving their relative order.
// AllCategories returns everything; an unknown category returns nothing.
func (c *Catalog) Filter(category string) []Entry {
	if category == AllCategories {
		return c.Entries()
	}
	out := make([]Entry, 0, c.counts[category])
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
