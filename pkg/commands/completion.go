package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(faq completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(faq completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func registerCategoryCompletion(cmd *cobra.Command, e *env) {
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(e), cobra.ShellCompDirectiveNoFileComp
	})
}

func categoryCompletions(e *env) []string {
	_, c, err := e.catalog()
	if err != nil {
		return nil
	}
	cs := c.CategoryOptions()
	for i := range cs {
		cs[i] = strconv.Quote(cs[i])
	}
	return cs
}
