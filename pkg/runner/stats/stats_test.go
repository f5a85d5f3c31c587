package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
)

func TestStatsJSON(t *testing.T) {
	tests := []struct {
		category string
		want     Report
	}{
		{category: "", want: Report{Category: faq.AllCategories, Stats: accordion.Stats{Total: 8, Categories: 7, Filtered: 8, Expanded: 1}}},
		{category: "Basics", want: Report{Category: "Basics", Stats: accordion.Stats{Total: 8, Categories: 7, Filtered: 2, Expanded: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			var buf bytes.Buffer
			s := &Stats{Catalog: faq.Default(), Out: &buf, Category: tt.category, JSON: true}
			require.NoError(t, s.Do(context.Background()))

			var got Report
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	s := &Stats{Catalog: faq.Default(), Out: &buf, JSON: true}
	require.NoError(t, s.Do(context.Background()))
	assert.Contains(t, buf.String(), `"filtered": 8`)
	assert.Contains(t, buf.String(), `"category": "All"`)
}

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer
	s := &Stats{Catalog: faq.Default(), Out: &buf, Category: "Forms"}
	require.NoError(t, s.Do(context.Background()))
	assert.Contains(t, buf.String(), "Filtered Items   1")
}

func TestStatsUnknownCategory(t *testing.T) {
	s := &Stats{Catalog: faq.Default(), Out: &bytes.Buffer{}, Category: "Nope"}
	assert.ErrorIs(t, s.Do(context.Background()), faq.ErrUnknownCategory)
}
