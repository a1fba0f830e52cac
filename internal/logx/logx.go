// Package logx provides inkstage's logging infrastructure built on charmbracelet/log.
//
// It wraps charmbracelet/log to provide a centralized logger factory with component
// prefixes, level configuration, and stderr-only output. All log output goes to
// stderr; stdout is reserved for rendered page bytes and structured output.
//
// Usage:
//
//	// During CLI initialization:
//	logx.Setup(verbose, quiet, jsonFormat)
//
//	// In each package:
//	var logger = logx.New("render")
//	logger.Info("page complete", "index", 3)
//
// Setup must be called before New to ensure child loggers inherit the correct
// level and formatter settings. charmbracelet/log creates child loggers by
// copying state at creation time; later changes to the default logger do not
// propagate to existing children.
package logx

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level aliases for charmbracelet/log levels, re-exported so consumers do
// not need to import charmbracelet/log directly.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
	LevelFatal = log.FatalLevel
)

// Setup configures the global logging defaults. Call once during process
// initialization (CLI entrypoint, or the first deck.New in a library
// consumer that wants logging).
//
// If both verbose and quiet are set, quiet wins: in scripted/render-farm
// use, --quiet should always suppress noise regardless of other flags.
func Setup(verbose, quiet, jsonFormat bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if jsonFormat {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}

// New creates a logger with the given component prefix.
//
// An empty component string produces a logger without a prefix.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the output writer for the default logger. Primarily
// useful for tests, which can capture output with a bytes.Buffer.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
