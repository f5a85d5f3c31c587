package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/runner/info"
	"tableflip.dev/faq/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the icon legend",
		Example: `
faq key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addInfo(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where questions are loaded from.",
		Example: `
faq info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.config()
			if err != nil {
				return err
			}
			s := info.Info{Config: cfg, Out: cmd.OutOrStdout()}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
