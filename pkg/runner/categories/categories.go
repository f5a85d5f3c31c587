// Package categories prints the category options of a catalog.
package categories

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/printers"
)

type Categories struct {
	Catalog *faq.Catalog
	Out     io.Writer
}

func (c *Categories) Do(_ context.Context) error {
	if c.Catalog == nil {
		return errors.New("can not list categories, no catalog")
	}
	printers.New(c.Out).Categories(c.Catalog)
	return nil
}
