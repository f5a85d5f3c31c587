// Package key provides CLI helpers to display the icon legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/faq/pkg/glyph"
	"tableflip.dev/faq/pkg/printers"
)

// Key prints the symbol drawn for each entry icon.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	printers.New(k.Out).Key(glyph.DefaultGlyphs())
	return nil
}
