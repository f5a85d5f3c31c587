// Package printers formats catalog data for the non-interactive commands.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/glyph"
)

// DefaultWidth is the answer wrap width.
const DefaultWidth = 80

// PrettyPrint writes human readable output to Out.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	Width  int

	color bool
}

// New returns a printer for w. Color is enabled only when w is a terminal.
func New(w io.Writer) *PrettyPrint {
	return &PrettyPrint{Out: w, Width: DefaultWidth, color: IsTerminal(w)}
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

var spacing = strings.Repeat(" ", len("#00  "))

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.style(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " question")
	default:
		_, _ = c.Fprintln(pp.Out, " questions")
	}
}

// Entries prints one line per question; with expanded set each answer and
// its tags follow the question.
func (pp *PrettyPrint) Entries(entries []faq.Entry, expanded bool) {
	if len(entries) == 0 {
		f := pp.style(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.Out, " none")
		pp.NewLine()
		return
	}

	q := pp.style(color.Bold)
	y := pp.style(color.FgHiYellow, color.Faint)
	cat := pp.style(color.FgCyan)
	tags := pp.style(color.Faint, color.Italic)

	for _, e := range entries {
		if pp.ShowID {
			id := fmt.Sprintf("#%d", e.ID)
			_, _ = y.Fprint(pp.Out, id+strings.Repeat(" ", max(len(spacing)-len(id), 1)))
		}
		_, _ = fmt.Fprintf(pp.Out, "%s %s %s ", glyph.Chevron(expanded), glyph.For(e.Icon), q.Sprint(e.Question))
		_, _ = cat.Fprintf(pp.Out, "[%s]\n", e.Category)
		if !expanded {
			continue
		}
		_, _ = fmt.Fprintln(pp.Out, pp.wrap(e.Answer))
		if t := e.HashTags(); t != "" {
			_, _ = tags.Fprintln(pp.Out, pp.wrap(t))
		}
		pp.NewLine()
	}
	if !expanded {
		pp.NewLine()
	}
}

func (pp *PrettyPrint) wrap(s string) string {
	width := pp.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return indent.String(wordwrap.String(s, max(width-4, 20)), 4)
}

// Categories prints the category options with their entry counts.
func (pp *PrettyPrint) Categories(c *faq.Catalog) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Questions"))
	for _, name := range c.CategoryOptions() {
		tbl.AddRow(name, c.Count(name))
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.Out, tbl)
}

// Stats prints the counters shown above the accordion.
func (pp *PrettyPrint) Stats(category string, s accordion.Stats) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Total Questions"), s.Total)
	tbl.AddRow(bold.Sprint("Categories"), s.Categories)
	tbl.AddRow(bold.Sprint("Filtered Items"), s.Filtered)
	tbl.AddRow(bold.Sprint("Active Category"), category)

	_, _ = fmt.Fprintln(pp.Out, tbl)
}

// Key prints the icon legend.
func (pp *PrettyPrint) Key(glyphs []glyph.Glyph) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Icon"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, string(g.Icon), g.Meaning)
	}
	tbl.RightAlign(0)

	pp.Title("Icons")
	_, _ = fmt.Fprintln(pp.Out, tbl)
}
