package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/store"
)

func TestExportRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	e := &Export{Catalog: faq.Default(), Out: &buf}
	require.NoError(t, e.Do(context.Background()))

	c, err := store.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, faq.Default().Entries(), c.Entries())
}

func TestExportCategory(t *testing.T) {
	var buf bytes.Buffer
	e := &Export{Catalog: faq.Default(), Out: &buf, Category: "Basics"}
	require.NoError(t, e.Do(context.Background()))

	c, err := store.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Basics"}, c.Categories())
}

func TestExportUnknownCategory(t *testing.T) {
	e := &Export{Catalog: faq.Default(), Out: &bytes.Buffer{}, Category: "Nope"}
	assert.ErrorIs(t, e.Do(context.Background()), faq.ErrUnknownCategory)
}
