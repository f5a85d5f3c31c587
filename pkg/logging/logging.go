// Package logging builds the zap logger shared by the commands and UIs.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/faq/pkg/accordion"
)

// Options selects where and how verbosely to log.
type Options struct {
	// File receives JSON log lines. Empty disables logging, since the
	// terminal UI owns stdout and stderr.
	File  string
	Debug bool
}

// New returns a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{opts.File}
	config.ErrorOutputPaths = []string{opts.File}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// Observer logs controller changes at debug level.
func Observer(logger *zap.Logger) accordion.Observer {
	return func(ev accordion.Event) {
		logger.Debug("accordion state changed",
			zap.String("kind", string(ev.Kind)),
			zap.String("category", ev.Category),
			zap.Int("position", ev.Position),
			zap.Ints("expanded", ev.Expanded))
	}
}
