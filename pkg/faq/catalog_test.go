package faq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entries []Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestDefaultCatalogCounts(t *testing.T) {
	c := Default()

	assert.Equal(t, 8, c.Len())
	assert.Equal(t, []string{
		"Basics", "State Management", "Advanced", "Performance", "Forms", "Routing", "Testing",
	}, c.Categories())
	assert.Equal(t, "All", c.CategoryOptions()[0])
	assert.Len(t, c.CategoryOptions(), 8)
}

func TestFilterPreservesOrder(t *testing.T) {
	c := Default()

	for _, category := range c.Categories() {
		got := c.Filter(category)
		var want []int
		for _, e := range c.Entries() {
			if e.Category == category {
				want = append(want, e.ID)
			}
		}
		assert.Equal(t, want, ids(got), "category %q", category)
		assert.Equal(t, len(want), c.Count(category))
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(c.Filter(AllCategories)))
}

func TestFilterBasics(t *testing.T) {
	got := Default().Filter("Basics")
	require.Len(t, got, 2)
	assert.Equal(t, "What is React and why should I use it?", got[0].Question)
	assert.Equal(t, "What is the difference between props and state?", got[1].Question)
}

func TestFilterUnknownCategory(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Filter("Nope"))
	assert.False(t, c.HasCategory("Nope"))
	assert.True(t, c.HasCategory(AllCategories))
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Entry{
		{ID: 1, Question: "a", Category: "x"},
		{ID: 1, Question: "b", Category: "y"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestNewCatalogRejectsMissingText(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "no question", entry: Entry{ID: 1, Category: "x"}},
		{name: "no category", entry: Entry{ID: 1, Question: "q"}},
		{name: "blank category", entry: Entry{ID: 1, Question: "q", Category: "  "}},
		{name: "reserved category", entry: Entry{ID: 1, Question: "q", Category: AllCategories}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog([]Entry{tt.entry})
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestEmptyCatalog(t *testing.T) {
	c, err := NewCatalog(nil)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Categories())
	assert.Equal(t, []string{AllCategories}, c.CategoryOptions())
	assert.Empty(t, c.Filter(AllCategories))
}

func TestCatalogCopiesInput(t *testing.T) {
	entries := []Entry{{ID: 1, Question: "q", Category: "x", Tags: []string{"a"}}}
	c, err := NewCatalog(entries)
	require.NoError(t, err)

	entries[0].Tags[0] = "changed"
	got, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got.Tags)

	_, ok = c.Lookup(42)
	assert.False(t, ok)
}

func TestHashTags(t *testing.T) {
	assert.Equal(t, "#React #Fundamentals", DefaultEntries()[0].HashTags())
	assert.Equal(t, "", Entry{}.HashTags())
}

func TestCheckCategory(t *testing.T) {
	c := Default()
	assert.NoError(t, c.CheckCategory(AllCategories))
	assert.NoError(t, c.CheckCategory("Routing"))

	err := c.CheckCategory("Nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.EqualError(t, err, `unknown category "Nope"`)
}
