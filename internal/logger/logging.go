// Package logger wraps charmbracelet/log's default logger for use across packages.
//
// Everything writes to stderr: the IPC server owns stdout.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the global logger. Debug mode lowers the level and adds
// timestamps; otherwise only warnings and errors are shown.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}

// New creates a prefixed charm log that respects the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New with a custom destination.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
