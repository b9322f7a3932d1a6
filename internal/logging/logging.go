// Package logging builds the zap logger used for diagnostics.
//
// The dashboard owns the terminal while it runs, so its logger writes JSON
// lines to a file. CLI subcommands pass an empty path and log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deafcat/adaptation/internal/config"
)

const defaultLogPath = "~/.local/state/deafcat/deafcat.log"

// DefaultPath returns the default log file location.
func DefaultPath() string {
	return defaultLogPath
}

// New builds a production logger writing to path, or to stderr when path is
// empty. debug lowers the level to Debug.
func New(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	out := "stderr"
	if path != "" {
		resolved, err := config.ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		out = resolved
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
