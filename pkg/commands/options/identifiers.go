package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls whether entry ids are printed.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers --show-id.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each question.")
}
