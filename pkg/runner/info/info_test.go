package info

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/store"
)

func TestInfoBuiltIn(t *testing.T) {
	t.Setenv("FAQ_CONFIG_PATH", "")
	var buf bytes.Buffer
	n := &Info{Config: store.StaticConfig{Expand: "multi"}, Out: &buf}
	require.NoError(t, n.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "FAQ_CONFIG_PATH env var not set")
	assert.Contains(t, out, "(built-in)")
	assert.Contains(t, out, "multi")
	assert.Contains(t, out, "Catalog: 8 questions in 7 categories")
}

func TestInfoMissingData(t *testing.T) {
	n := &Info{Config: store.StaticConfig{Data: t.TempDir() + "/missing.yaml"}, Out: &bytes.Buffer{}}
	assert.Error(t, n.Do(context.Background()))
}
