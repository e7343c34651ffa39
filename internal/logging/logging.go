// Package logging builds the application's zap logger. The TUI owns stdout,
// so logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger.
type Options struct {
	// Path is the log file. Empty means DefaultPath().
	Path string

	// Debug lowers the level to debug.
	Debug bool
}

// New returns a JSON file logger. The caller should Sync it on exit.
func New(opts Options) (*zap.Logger, error) {
	path := opts.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("persona"), nil
}

// DefaultPath resolves the log file path in priority order:
// 1. PERSONA_LOG_FILE environment variable
// 2. $XDG_STATE_HOME/persona/persona.log
// 3. ~/.local/state/persona/persona.log
func DefaultPath() (string, error) {
	if p := os.Getenv("PERSONA_LOG_FILE"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "persona", "persona.log"), nil
}
