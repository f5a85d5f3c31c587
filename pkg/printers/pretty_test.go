package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/glyph"
)

func TestBufferIsNotATerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestEntriesCollapsed(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.ShowID = true
	pp.Entries(faq.Default().Filter("Basics"), false)

	out := buf.String()
	assert.Contains(t, out, "#1   ▸ ϟ What is React and why should I use it? [Basics]")
	assert.Contains(t, out, "#5   ▸ ✉ What is the difference between props and state? [Basics]")
	assert.NotContains(t, out, "React is a JavaScript library")
	assert.NotContains(t, out, "\x1b[")
}

func TestEntriesExpandedWrapsAnswers(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.Width = 40
	pp.Entries(faq.Default().Filter("Routing"), true)

	out := buf.String()
	assert.Contains(t, out, "▾ ◍ What is React Router and how do I use it? [Routing]")
	assert.Contains(t, out, "#Router #Navigation #SPA")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "    ") {
			assert.LessOrEqual(t, len([]rune(line)), 40, line)
		}
	}
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Entries(nil, false)
	assert.Contains(t, buf.String(), "none")
}

func TestCategoriesTable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Categories(faq.Default())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 9)
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, lines[1], "All")
	assert.Contains(t, lines[1], "8")
	assert.Contains(t, lines[2], "Basics")
	assert.Contains(t, lines[2], "2")
}

func TestTitleWithCount(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.TitleWithCount("Basics", 2)
	pp.TitleWithCount("Forms", 1)
	assert.Equal(t, "Basics - 2 questions\nForms - 1 question\n", buf.String())
}

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Stats("Basics", accordion.Stats{Total: 8, Categories: 7, Filtered: 2})

	out := buf.String()
	assert.Contains(t, out, "Total Questions")
	assert.Contains(t, out, "Filtered Items   2")
	assert.Contains(t, out, "Basics")
}

func TestKeyLegend(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Key(glyph.DefaultGlyphs())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Icons\n"))
	assert.Contains(t, out, "help-circle")
	assert.Contains(t, out, "sparkles")
	assert.Contains(t, out, "Symbol  Icon")
	assert.NotContains(t, out, "\x1b[")
}

func TestKeyLegendColorsThroughPrinter(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.color = true
	pp.Key(glyph.DefaultGlyphs())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[1;4mIcons"), out)
	assert.Contains(t, out, pp.style(color.Bold).Sprint("Meaning"))
}
