// Package style formats the one-line status messages msbee prints around
// its reports.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/msbee/msbee/internal/ui"
)

var (
	Success = lipgloss.NewStyle().Foreground(ui.ColorOK).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(ui.ColorWarn).Bold(true)
	Error   = lipgloss.NewStyle().Foreground(ui.ColorFail).Bold(true)
	Info    = lipgloss.NewStyle().Foreground(ui.ColorAccent)
	Dim     = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	Bold    = lipgloss.NewStyle().Bold(true)
)

// Stderr is where warnings and errors go. Tests replace it.
var Stderr io.Writer = os.Stderr

// PrintSuccess writes "✓ msg" to w.
func PrintSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Success.Render(ui.IconOK), fmt.Sprintf(format, args...))
}

// PrintWarning writes "⚠ Warning: msg" to Stderr.
func PrintWarning(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", Warning.Render(ui.IconWarn+" Warning:"), fmt.Sprintf(format, args...))
}

// PrintError writes "✖ Error: msg" to Stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", Error.Render(ui.IconFail+" Error:"), fmt.Sprintf(format, args...))
}
