package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/faq"
)

func TestListAllByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Catalog: faq.Default(), Out: &buf}
	require.NoError(t, l.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "All - 8 questions")
	assert.Contains(t, out, "How do I test React applications?")
	assert.NotContains(t, out, "Jest")
}

func TestListCategoryExpanded(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Catalog: faq.Default(), Out: &buf, Category: "Testing", Expanded: true, ShowID: true}
	require.NoError(t, l.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Testing - 1 question\n")
	assert.Contains(t, out, "#8")
	assert.Contains(t, out, "#Jest #Testing #Quality")
	assert.NotContains(t, out, "React Router")
}

func TestListUnknownCategory(t *testing.T) {
	l := &List{Catalog: faq.Default(), Out: &bytes.Buffer{}, Category: "Nope"}
	err := l.Do(context.Background())
	assert.ErrorIs(t, err, faq.ErrUnknownCategory)
	assert.EqualError(t, err, `unknown category "Nope"`)
}

func TestListNoCatalog(t *testing.T) {
	assert.Error(t, (&List{Out: &bytes.Buffer{}}).Do(context.Background()))
}
