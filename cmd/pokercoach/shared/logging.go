// Package shared holds setup helpers used by every pokercoach command.
package shared

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// SetupLogger builds a stderr logger at the named level. Unknown levels fall back to info.
func SetupLogger(level string) *log.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger builds a logger writing to w
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name onto a log level
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// DisableColor strips colour from lipgloss rendering and log output
func DisableColor(logger *log.Logger) {
	lipgloss.SetColorProfile(termenv.Ascii)
	if logger != nil {
		logger.SetColorProfile(termenv.Ascii)
	}
}
