// Package logging builds the stderr logger shared by msbee commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New returns a logger writing to w at the named level
// (debug, info, warn or error).
func New(w io.Writer, level string) (*log.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "msbee",
	}), nil
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
