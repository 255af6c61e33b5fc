// Package logging wraps charmbracelet/log for haikal's commands.
//
// Library packages never log; the CLI builds one logger per invocation and
// hands it down through the context.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable that sets the log level.
const EnvLevel = "HAIKAL_LOG_LEVEL"

//nolint:gochecknoglobals // Process-wide fallback logger.
var defaultLogger atomic.Pointer[log.Logger]

// New returns a logger writing to stderr at the named level.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w at the named level.
// Timestamps and caller info are off; output is meant for people.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: ParseLevel(level)})
}

// NewInteractive returns an info-level logger prefixed with the program
// name, for confirmations addressed to the user.
func NewInteractive(w io.Writer) *log.Logger {
	logger := NewWithWriter(w, "info")
	logger.SetPrefix("haikal")
	return logger
}

// ParseLevel maps a level name to a log level. Names are case-insensitive,
// "warning" is accepted for "warn", and anything unknown is info.
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Default returns the process-wide logger.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
