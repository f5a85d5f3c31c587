package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/gui"
	tuiapp "tableflip.dev/faq/pkg/tui/app"
)

func addUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
faq ui
faq ui --policy multi
faq ui --data ~/team-faq.yaml --log-file /tmp/faq.log --debug
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(e)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(e *env) error {
	s, err := e.session()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()
	return tuiapp.Run(s.catalog, tuiapp.Options{
		Policy: s.policy,
		Logger: s.logger,
		Debug:  s.debug,
	})
}

func addGUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		Example: `
faq gui
faq gui --policy multi
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session()
			if err != nil {
				return err
			}
			defer func() { _ = s.logger.Sync() }()
			return gui.Run(s.catalog, gui.Options{Policy: s.policy, Logger: s.logger})
		},
	}

	topLevel.AddCommand(cmd)
}
