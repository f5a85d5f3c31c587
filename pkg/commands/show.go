package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/runner/export"
	"tableflip.dev/faq/pkg/runner/show"
)

func addShow(topLevel *cobra.Command, e *env) {
	raw := false
	width := 0

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "render one question and its answer",
		Example: `
faq show 3
faq show 3 --raw
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			_, c, err := e.catalog()
			if err != nil {
				return err
			}
			s := show.Show{
				Catalog: c,
				Out:     cmd.OutOrStdout(),
				ID:      id,
				Raw:     raw,
				Width:   width,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown instead of rendering it.")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width for rendered output.")

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command, e *env) {
	category := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the catalog as YAML for use with --data",
		Example: `
faq export > faq.yaml
faq export --category Basics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := e.catalog()
			if err != nil {
				return err
			}
			x := export.Export{Catalog: c, Out: cmd.OutOrStdout(), Category: category}
			return x.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only export one category.")
	registerCategoryCompletion(cmd, e)

	topLevel.AddCommand(cmd)
}
