// Package export writes a catalog in the file format `--data` reads.
package export

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/store"
)

type Export struct {
	Catalog  *faq.Catalog
	Out      io.Writer
	Category string
}

func (e *Export) Do(_ context.Context) error {
	if e.Catalog == nil {
		return errors.New("can not export, no catalog")
	}
	c := e.Catalog
	if e.Category != "" && e.Category != faq.AllCategories {
		if err := c.CheckCategory(e.Category); err != nil {
			return err
		}
		var err error
		c, err = faq.NewCatalog(c.Filter(e.Category))
		if err != nil {
			return err
		}
	}
	return store.Encode(e.Out, c)
}
