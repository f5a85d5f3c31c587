package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions switches a command to prompting for its input.
type InteractiveOptions struct {
	Interactive bool
}

// InteractiveArgs registers --interactive.
func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Interactive input of subcommands or options.`)
}
