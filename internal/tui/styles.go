package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/tui/theme"
)

// Styles contains the Lipgloss styles the app shell draws around views.
type Styles struct {
	// Footer styles
	Footer      lipgloss.Style
	FooterRight lipgloss.Style

	// Status indicators
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles using the current theme.
func DefaultStyles() Styles {
	t := theme.Current

	return Styles{
		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),

		FooterRight: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true).
			Align(lipgloss.Right),

		StatusError: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true).
			Padding(0, 1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(t.Info).
			Padding(0, 1),
	}
}
