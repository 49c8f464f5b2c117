// Package theme provides color theming for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/watering"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Background colors
	Surface lipgloss.AdaptiveColor
	Overlay lipgloss.AdaptiveColor

	// Text colors
	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
}

// GardenTheme is the default leafy color scheme.
var GardenTheme = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}, // Leaf green
	Secondary: lipgloss.AdaptiveColor{Light: "#6D4C41", Dark: "#A1887F"}, // Soil
	Accent:    lipgloss.AdaptiveColor{Light: "#00838F", Dark: "#4DD0E1"}, // Water

	Surface: lipgloss.AdaptiveColor{Light: "#F1F8E9", Dark: "#1B2418"},
	Overlay: lipgloss.AdaptiveColor{Light: "#DCEDC8", Dark: "#2A3826"},

	Text:          lipgloss.AdaptiveColor{Light: "#1B1B1B", Dark: "#E8F5E9"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#7D8C7A"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"},
	Warning: lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FFB74D"},
	Error:   lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"},
	Info:    lipgloss.AdaptiveColor{Light: "#0277BD", Dark: "#4FC3F7"},
}

// NightTheme is a low-contrast scheme for dark terminals.
var NightTheme = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#33691E", Dark: "#9CCC65"},
	Secondary: lipgloss.AdaptiveColor{Light: "#4E342E", Dark: "#8D6E63"},
	Accent:    lipgloss.AdaptiveColor{Light: "#01579B", Dark: "#81D4FA"},

	Surface: lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#101410"},
	Overlay: lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#1E241E"},

	Text:          lipgloss.AdaptiveColor{Light: "#212121", Dark: "#CFD8CF"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#757575", Dark: "#607060"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F5F5F5"},

	Success: lipgloss.AdaptiveColor{Light: "#388E3C", Dark: "#A5D6A7"},
	Warning: lipgloss.AdaptiveColor{Light: "#EF6C00", Dark: "#FFCC80"},
	Error:   lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#E57373"},
	Info:    lipgloss.AdaptiveColor{Light: "#0288D1", Dark: "#81D4FA"},
}

// Current is the active theme (can be changed at runtime).
var Current = GardenTheme

// StatusColor returns the banner color for a watering status.
func StatusColor(s watering.Status) lipgloss.AdaptiveColor {
	switch s {
	case watering.StatusSoon:
		return Current.Info
	case watering.StatusDue:
		return Current.Warning
	case watering.StatusOverdue:
		return Current.Error
	default:
		return Current.TextMuted
	}
}
