package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/commands/options"
	"tableflip.dev/faq/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command, e *env) {
	co := &options.CategoryOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "print the question counters",
		Example: `
faq stats
faq stats --category Basics --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := e.catalog()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			s := stats.Stats{
				Catalog:  c,
				Out:      cmd.OutOrStdout(),
				Category: co.Category,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	options.AddCategoryArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	registerCategoryCompletion(cmd, e)

	topLevel.AddCommand(cmd)
}
