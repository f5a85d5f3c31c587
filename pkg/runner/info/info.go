package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/faq/pkg/store"
)

// Info reports where configuration and data were resolved from.
type Info struct {
	Config store.Config
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	if override := os.Getenv("FAQ_CONFIG_PATH"); override != "" {
		fmt.Fprintln(n.Out, "FAQ_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(n.Out, "FAQ_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	data := n.Config.DataPath()
	if data == "" {
		data = "(built-in)"
	}
	logFile := n.Config.LogFile()
	if logFile == "" {
		logFile = "(disabled)"
	}
	fmt.Fprintln(n.Out, "Config.data:    ", data)
	fmt.Fprintln(n.Out, "Config.policy:  ", n.Config.Policy())
	fmt.Fprintln(n.Out, "Config.log_file:", logFile)
	fmt.Fprintln(n.Out, "Config.debug:   ", n.Config.Debug())

	c, err := store.Load(n.Config)
	if err != nil {
		return err
	}
	fmt.Fprintf(n.Out, "Catalog: %d questions in %d categories\n", c.Len(), len(c.Categories()))
	return nil
}
