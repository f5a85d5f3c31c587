package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/commands/options"
	"tableflip.dev/faq/pkg/runner/categories"
	"tableflip.dev/faq/pkg/runner/list"
	"tableflip.dev/faq/pkg/snake"
)

func addList(topLevel *cobra.Command, e *env) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list questions, optionally for one category",
		Example: `
faq list
faq list --category Basics --expanded
faq list -i
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := e.catalog()
			if err != nil {
				return err
			}
			if i.Interactive {
				co.Category, err = snake.PromptCategory(cmd, c)
				if err != nil {
					return err
				}
			}
			l := list.List{
				Catalog:  c,
				Out:      cmd.OutOrStdout(),
				Category: co.Category,
				Expanded: co.Expanded,
				ShowID:   io.ShowID,
			}
			return l.Do(context.Background())
		},
	}

	options.AddCategoryArg(cmd, co)
	options.AddExpandedArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	registerCategoryCompletion(cmd, e)

	topLevel.AddCommand(cmd)
}

func addCategories(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "list categories and how many questions each holds",
		Example: `
faq categories
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := e.catalog()
			if err != nil {
				return err
			}
			s := categories.Categories{Catalog: c, Out: cmd.OutOrStdout()}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
