package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
)

func visibleAnswers(v *View) []int {
	var out []int
	for i, a := range v.answers {
		if a.Visible() {
			out = append(out, i)
		}
	}
	return out
}

func TestViewStartsWithFirstAnswerOpen(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	v := NewView(accordion.New(faq.Default()))

	require.Len(t, v.headers, 8)
	assert.Equal(t, []int{0}, visibleAnswers(v))
	assert.Contains(t, v.stats.Text, "Total Questions: 8")
	assert.Contains(t, v.status.Text, "Active Category: All Categories · Expanded: Yes")
	assert.Equal(t, widget.HighImportance, v.categoryButtons[faq.AllCategories].Importance)
}

func TestTapHeaderTogglesThroughController(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := accordion.New(faq.Default())
	v := NewView(ctrl)

	test.Tap(v.headers[2])
	assert.Equal(t, []int{2}, ctrl.ExpandedPositions())
	assert.Equal(t, []int{2}, visibleAnswers(v))

	test.Tap(v.headers[2])
	assert.Empty(t, ctrl.ExpandedPositions())
	assert.Empty(t, visibleAnswers(v))
	assert.Contains(t, v.status.Text, "Expanded: None")
}

func TestTapCategoryFilters(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := accordion.New(faq.Default())
	v := NewView(ctrl)

	test.Tap(v.categoryButtons["Basics"])
	assert.Equal(t, "Basics", ctrl.Category())
	require.Len(t, v.headers, 2)
	assert.Contains(t, v.headers[1].Text, "What is the difference between props and state?")
	assert.Contains(t, v.stats.Text, "Filtered Items: 2")
	assert.Contains(t, v.status.Text, "Active Category: Basics")
	assert.Equal(t, widget.HighImportance, v.categoryButtons["Basics"].Importance)
	assert.Equal(t, widget.MediumImportance, v.categoryButtons[faq.AllCategories].Importance)
}

func TestMultiPolicyExpandAll(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	ctrl := accordion.New(faq.Default(), accordion.WithPolicy(accordion.MultiPolicy))
	v := NewView(ctrl)

	ctrl.ExpandAll()
	v.Refresh()
	assert.Len(t, visibleAnswers(v), 8)
}

func TestEmptyCatalogShowsEmptyState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	empty, err := faq.NewCatalog(nil)
	require.NoError(t, err)
	v := NewView(accordion.New(empty))

	assert.Empty(t, v.headers)
	require.Len(t, v.rows.Objects, 2)
	label, ok := v.rows.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "No questions found for this category", label.Text)
}
