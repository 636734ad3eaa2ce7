package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level     string `yaml:"level,omitempty"`      // debug, info, warn, error
	File      string `yaml:"file,omitempty"`       // log file path
	DebugMode bool   `yaml:"debug_mode,omitempty"` // master toggle - false = no logging
}

// Build constructs the zap logger described by the config.
//
// When toFile is true output goes to the configured log file only, which
// keeps stdout clean for the TUI; otherwise it goes to stderr. With
// DebugMode off and verbose off this returns a no-op logger.
func (c LoggingConfig) Build(verbose, toFile bool) (*zap.Logger, error) {
	if !c.DebugMode && !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	if verbose || c.Level == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if lvl, err := zapcore.ParseLevel(c.Level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	if toFile && c.File != "" {
		cfg.OutputPaths = []string{c.File}
		cfg.ErrorOutputPaths = []string{c.File}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
