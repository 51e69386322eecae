// Package logger builds the charmbracelet/log loggers shared across packages.
//
// Solver results go to stdout, so every logger here writes to stderr; the
// two streams stay separable when the output is piped.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log at the global level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithLevel creates a prefixed charm log pinned to its own level,
// independent of the global setting.
func NewWithLevel(prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}
