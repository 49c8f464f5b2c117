package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown content using Glamour for terminal display.
// Returns a slice of lines ready for display.
func RenderMarkdown(content string, wrap int) []string {
	if content == "" {
		return []string{}
	}
	if wrap <= 0 {
		wrap = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
		glamour.WithEmoji(),
	)
	if err != nil {
		// Fallback to plain text if rendering fails
		return strings.Split(content, "\n")
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return strings.Split(content, "\n")
	}

	lines := strings.Split(rendered, "\n")

	// Remove trailing empty lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
