// Package logging builds the zap loggers used by missionboard.
//
// The TUI owns the terminal, so interactive sessions log to a file; the
// dump and mock commands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configure a logger.
type Options struct {
	// Path is the log file. Empty or "stderr" logs to stderr.
	Path  string
	Debug bool
}

// New builds a production JSON logger writing to opts.Path.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if opts.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := strings.TrimSpace(opts.Path)
	if sink == "" {
		sink = "stderr"
	}
	if sink != "stderr" && sink != "stdout" {
		if err := os.MkdirAll(filepath.Dir(sink), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	config.OutputPaths = []string{sink}
	config.ErrorOutputPaths = []string{sink}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("missionboard"), nil
}
