package ui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Theme is the color scheme msbee renders with.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// EnvTheme overrides the configured theme.
const EnvTheme = "MSBEE_THEME"

var (
	theme        = ThemeAuto
	darkDetected = true
)

// InitTheme resolves the theme from MSBEE_THEME, then configTheme, then auto,
// and applies it to the shared styles.
func InitTheme(configTheme string) {
	theme = resolveTheme(os.Getenv(EnvTheme), configTheme)
	darkDetected = isDark(theme)
	applyTheme()
}

// CurrentTheme returns the theme set by InitTheme.
func CurrentTheme() Theme {
	return theme
}

// HasDarkBackground reports whether colors are picked for a dark terminal.
func HasDarkBackground() bool {
	return darkDetected
}

func resolveTheme(values ...string) Theme {
	for _, v := range values {
		switch Theme(strings.ToLower(strings.TrimSpace(v))) {
		case ThemeDark:
			return ThemeDark
		case ThemeLight:
			return ThemeLight
		case ThemeAuto:
			return ThemeAuto
		}
	}
	return ThemeAuto
}

func isDark(t Theme) bool {
	switch t {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return termenv.HasDarkBackground()
	}
}

// IsTerminal reports whether stdout is a TTY.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor follows NO_COLOR, CLICOLOR=0 and CLICOLOR_FORCE, and
// otherwise colors only a TTY.
func ShouldUseColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if _, ok := os.LookupEnv("CLICOLOR_FORCE"); ok {
		return true
	}
	return IsTerminal()
}

// ShouldUseEmoji is false under MSBEE_NO_EMOJI or when stdout is not a TTY.
func ShouldUseEmoji() bool {
	if _, ok := os.LookupEnv("MSBEE_NO_EMOJI"); ok {
		return false
	}
	return IsTerminal()
}

// Width returns the terminal width capped at 100 columns, or 80 when stdout
// is not a terminal.
func Width() int {
	const (
		defaultWidth = 80
		maxWidth     = 100
	)
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return min(w, maxWidth)
}

// Height returns the terminal height, or 0 when stdout is not a terminal.
func Height() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	_, h, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return h
}
