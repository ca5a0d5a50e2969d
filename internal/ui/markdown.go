package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown styles markdown for the terminal. It returns the input
// unchanged when color is off or rendering fails.
func RenderMarkdown(markdown string) string {
	if !ShouldUseColor() {
		return markdown
	}
	return renderMarkdown(markdown, Width())
}

func renderMarkdown(markdown string, width int) string {
	style := "light"
	if HasDarkBackground() {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
