// Package logging builds the zap loggers used by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"strings"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log level and encoding
type Options struct {
	Level    string // debug, info, warn, error
	Encoding string // json or console
	Verbose  bool   // forces debug level
}

// New builds a production zap logger writing to stderr
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	switch strings.ToLower(opts.Encoding) {
	case "", "json":
	case "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("unknown log encoding %q (want json or console)", opts.Encoding)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// EngineLogger adapts a zap logger to the calculation engine's logging
// interface, tagging every entry with the component name.
func EngineLogger(logger *zap.Logger) calculation.Logger {
	if logger == nil {
		return calculation.NopLogger{}
	}
	return logger.Named("engine").Sugar()
}
