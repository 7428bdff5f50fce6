// Package logging builds the zap loggers used across the hub. The chat UI
// owns the terminal, so interactive sessions log to a file (or nowhere) and
// only the one-shot CLI commands log to stderr.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFileLogger writes JSON logs to path, creating parent directories as
// needed. debug lowers the level to Debug.
func NewFileLogger(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// NewCLILogger logs to stderr for non-interactive subcommands. Without debug
// it stays quiet below Warn so command output is not drowned out.
func NewCLILogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
