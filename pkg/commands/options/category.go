package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/faq"
)

// CategoryOptions select which slice of the catalog a command works on.
type CategoryOptions struct {
	Category string
	Expanded bool
}

// AddCategoryArg registers --category.
func AddCategoryArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", faq.AllCategories,
		"Category to show, or 'All'.")
}

// AddExpandedArg registers --expanded.
func AddExpandedArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVarP(&o.Expanded, "expanded", "e", false,
		"Print answers as well as questions.")
}
