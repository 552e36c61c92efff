// Package logger wraps charmbracelet/log with the defaults the rest of the
// module expects: a named prefix per subsystem (trie, ipc, cli, ingest) and
// a text formatter that respects the process-wide log level.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a logger for the given subsystem prefix that respects
// the global log level set by cmd/seqtrie.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger with an explicit level and rendering
// options (caller reporting, timestamps, formatter), for callers that need
// more than Default.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
