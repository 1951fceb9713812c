// Package logging builds the diagnostic logger shared by sdkshell components.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. Verbose enables debug output; otherwise
// only warnings and errors are shown.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          "sdkshell",
		Level:           level,
		ReportTimestamp: verbose,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
