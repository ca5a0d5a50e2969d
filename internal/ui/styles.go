// Package ui holds msbee's terminal presentation: theme and color detection,
// the shared palette, markdown rendering and paging.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	applyTheme()
}

// applyTheme sets the lipgloss profile from the color decision and the
// background from the resolved theme.
func applyTheme() {
	if !ShouldUseColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(darkDetected)
}

// Ayu palette, adaptive to the background.
var (
	ColorOK     = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}

	// ColorHoney marks msbee's own headings.
	ColorHoney = lipgloss.AdaptiveColor{Light: "#e6b450", Dark: "#e6b450"}
)

var (
	OKStyle     = lipgloss.NewStyle().Foreground(ColorOK)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHoney)
	BoldStyle   = lipgloss.NewStyle().Bold(true)
)

// Icons, with plain fallbacks for terminals without emoji.
const (
	IconBee     = "🐝"
	IconOK      = "✓"
	IconWarn    = "⚠"
	IconFail    = "✖"
	IconPending = "○"
)

// Bee returns the bee icon, or "*" when emoji are disabled.
func Bee() string {
	if ShouldUseEmoji() {
		return IconBee
	}
	return "*"
}

func RenderOK(s string) string     { return OKStyle.Render(s) }
func RenderWarn(s string) string   { return WarnStyle.Render(s) }
func RenderFail(s string) string   { return FailStyle.Render(s) }
func RenderMuted(s string) string  { return MutedStyle.Render(s) }
func RenderAccent(s string) string { return AccentStyle.Render(s) }
func RenderTitle(s string) string  { return TitleStyle.Render(s) }
func RenderBold(s string) string   { return BoldStyle.Render(s) }
