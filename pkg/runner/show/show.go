// Package show renders a single question and its answer as markdown.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/glyph"
	"tableflip.dev/faq/pkg/printers"
)

type Show struct {
	Catalog *faq.Catalog
	Out     io.Writer
	ID      int
	// Raw prints the markdown source instead of rendering it.
	Raw   bool
	Width int
}

func (s *Show) Do(_ context.Context) error {
	if s.Catalog == nil {
		return errors.New("can not show, no catalog")
	}
	e, ok := s.Catalog.Lookup(s.ID)
	if !ok {
		return fmt.Errorf("%w: %d", faq.ErrNotFound, s.ID)
	}

	md := Markdown(e)
	if s.Raw {
		_, err := io.WriteString(s.Out, md)
		return err
	}

	width := s.Width
	if width <= 0 {
		width = printers.DefaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleFor(s.Out)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.Out, out)
	return err
}

func styleFor(w io.Writer) string {
	if !printers.IsTerminal(w) {
		return "notty"
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Markdown formats an entry as a small markdown document.
func Markdown(e faq.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", glyph.For(e.Icon), e.Question)
	fmt.Fprintf(&b, "_%s_ · #%d\n\n", e.Category, e.ID)
	fmt.Fprintf(&b, "%s\n", e.Answer)
	if len(e.Tags) > 0 {
		tags := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			tags = append(tags, "`"+t+"`")
		}
		fmt.Fprintf(&b, "\n%s\n", strings.Join(tags, " "))
	}
	return b.String()
}
