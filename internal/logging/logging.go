// Package logging sets up the optional lifecycle log. The splash owns the
// terminal, so log output goes to a file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/teamssUTXO/comingsoon/internal/config"
)

// Setup returns a zerolog logger per the logging configuration and a close
// function for the underlying file. With no file configured, the logger
// discards everything and close is a no-op.
func Setup(cfg config.LoggingConfig) (zerolog.Logger, func() error, error) {
	if cfg.File == "" {
		return Disabled(), func() error { return nil }, nil
	}

	path := cfg.File
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return Disabled(), nil, fmt.Errorf("logging: resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Disabled(), nil, fmt.Errorf("logging: create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return Disabled(), nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	logger := zerolog.New(file).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return logger, file.Close, nil
}

// Disabled returns a logger that discards all output.
func Disabled() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// ParseLevel converts a config level string to a zerolog level. Unknown or
// empty strings fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
