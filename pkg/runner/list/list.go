// Package list prints the questions of one category.
package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/printers"
)

// List prints the entries of Category, optionally with their answers.
type List struct {
	Catalog  *faq.Catalog
	Out      io.Writer
	Category string
	Expanded bool
	ShowID   bool
	Width    int
}

func (l *List) Do(_ context.Context) error {
	if l.Catalog == nil {
		return errors.New("can not list, no catalog")
	}
	if l.Category == "" {
		l.Category = faq.AllCategories
	}
	if err := l.Catalog.CheckCategory(l.Category); err != nil {
		return err
	}

	pp := printers.New(l.Out)
	pp.ShowID = l.ShowID
	if l.Width > 0 {
		pp.Width = l.Width
	}

	entries := l.Catalog.Filter(l.Category)
	pp.TitleWithCount(l.Category, len(entries))
	pp.Entries(entries, l.Expanded)
	return nil
}
