package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/faq/pkg/store"
)

// RootOptions are the persistent flags shared by every command. Each flag
// is bound onto viper so it overrides the config file and FAQ_* variables.
type RootOptions struct {
	Data    string
	Policy  string
	LogFile string
	Debug   bool
}

// AddRootArgs registers the persistent flags on cmd and binds them into v.
func AddRootArgs(cmd *cobra.Command, o *RootOptions, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.Data, "data", "",
		"Catalog file to load. Defaults to the built-in questions.")
	flags.StringVar(&o.Policy, "policy", "single",
		"Expand policy, one of 'single' or 'multi'.")
	flags.StringVar(&o.LogFile, "log-file", "",
		"Write JSON logs to this file.")
	flags.BoolVar(&o.Debug, "debug", false,
		"Enable debug logging and open the event log in the ui.")

	_ = v.BindPFlag(store.KeyData, flags.Lookup("data"))
	_ = v.BindPFlag(store.KeyPolicy, flags.Lookup("policy"))
	_ = v.BindPFlag(store.KeyLogFile, flags.Lookup("log-file"))
	_ = v.BindPFlag(store.KeyDebug, flags.Lookup("debug"))
}
