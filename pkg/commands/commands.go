package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/commands/options"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/logging"
	"tableflip.dev/faq/pkg/store"
)

// New returns the faq root command, bound to the global viper instance.
func New() *cobra.Command {
	return newRoot(viper.GetViper())
}

func newRoot(v *viper.Viper) *cobra.Command {
	e := &env{v: v}
	ro := &options.RootOptions{}

	cmd := &cobra.Command{
		Use:          "faq",
		Short:        base.Wrap80("Browse frequently asked questions in the terminal."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(e)
		},
	}
	options.AddRootArgs(cmd, ro, v)

	addCommands(cmd, e)
	return cmd
}

func addCommands(topLevel *cobra.Command, e *env) {
	addUI(topLevel, e)
	addGUI(topLevel, e)
	addList(topLevel, e)
	addCategories(topLevel, e)
	addStats(topLevel, e)
	addShow(topLevel, e)
	addExport(topLevel, e)
	addKey(topLevel)
	addInfo(topLevel, e)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// env resolves configuration lazily, after cobra has parsed the flags that
// are bound into v.
type env struct {
	v *viper.Viper
}

func (e *env) config() (store.Config, error) {
	return store.LoadConfigFrom(e.v)
}

func (e *env) catalog() (store.Config, *faq.Catalog, error) {
	cfg, err := e.config()
	if err != nil {
		return nil, nil, err
	}
	c, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}

// session collects what the interactive front ends need.
type session struct {
	catalog *faq.Catalog
	policy  accordion.Policy
	logger  *zap.Logger
	debug   bool
}

func (e *env) session() (*session, error) {
	cfg, c, err := e.catalog()
	if err != nil {
		return nil, err
	}
	policy, err := accordion.ParsePolicy(cfg.Policy())
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{File: cfg.LogFile(), Debug: cfg.Debug()})
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded",
		zap.String("data", cfg.DataPath()),
		zap.Stringer("policy", policy),
		zap.Int("entries", c.Len()),
	)
	return &session{catalog: c, policy: policy, logger: logger, debug: cfg.Debug()}, nil
}
