// Package stats reports the accordion counters for a category.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/printers"
)

// Stats computes counters through a Controller so the numbers match the
// interactive views.
type Stats struct {
	Catalog  *faq.Catalog
	Out      io.Writer
	Category string
	JSON     bool
}

// Report is the --json payload.
type Report struct {
	Category string `json:"category"`
	accordion.Stats
}

func (s *Stats) Do(_ context.Context) error {
	if s.Catalog == nil {
		return errors.New("can not compute stats, no catalog")
	}
	if s.Category == "" {
		s.Category = faq.AllCategories
	}
	if err := s.Catalog.CheckCategory(s.Category); err != nil {
		return err
	}

	ctrl := accordion.New(s.Catalog)
	ctrl.SelectCategory(s.Category)
	report := Report{Category: ctrl.Category(), Stats: ctrl.Stats()}

	if s.JSON {
		enc := json.NewEncoder(s.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printers.New(s.Out).Stats(report.Category, report.Stats)
	return nil
}
