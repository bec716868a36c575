// Package logging configures the optional debug logger.
//
// The TUI owns the terminal, so log output goes to a file instead of
// stderr. By default the file lives in the XDG state directory
// (~/.local/state/cardrow/debug.log); a config entry can point it
// elsewhere.
package logging

import (
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// New creates a logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// DefaultPath returns the debug log location in the XDG state directory,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("cardrow", "debug.log"))
}
