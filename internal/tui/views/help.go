package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/telemetry"
	"github.com/asteroid-belt/zelenko/internal/tui/theme"
)

// HelpView displays a list of available commands and keybindings.
type HelpView struct {
	width        int
	height       int
	viewCommands ViewCommands
	telemetry    telemetry.Client
}

// Command represents a single keyboard command.
type Command struct {
	Key         string
	Description string
}

// ViewCommands represents commands for a specific view.
type ViewCommands struct {
	ViewName string
	Commands []Command
}

// NewHelpView creates a new help view.
func NewHelpView(tc telemetry.Client) *HelpView {
	if tc == nil {
		tc = telemetry.Noop()
	}
	return &HelpView{telemetry: tc}
}

// SetSize sets the width and height of the view.
func (hv *HelpView) SetSize(width, height int) {
	hv.width = width
	hv.height = height
}

// SetViewCommands sets the commands from the calling view.
func (hv *HelpView) SetViewCommands(commands ViewCommands) {
	hv.viewCommands = commands
	hv.telemetry.TrackHelpViewed(commands.ViewName)
}

// Update handles key input. Returns true when the help screen should close.
func (hv *HelpView) Update(key string) bool {
	switch key {
	case "esc", "?", "q":
		return true
	default:
		return false
	}
}

// View renders the help view.
func (hv *HelpView) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		MarginLeft(1).
		MarginTop(1).
		MarginBottom(1)

	title := titleStyle.Render("Pomoć - dostupne komande")

	sectionHeaderStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginLeft(1).
		MarginTop(1)

	globalHeader := sectionHeaderStyle.Render("Svuda")
	globalTable := hv.renderCommandTable(globalCommands())

	viewHeader := sectionHeaderStyle.Render(hv.viewCommands.ViewName)
	viewTable := hv.renderCommandTable(hv.viewCommands.Commands)

	footerStyle := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		MarginTop(1).
		MarginLeft(1)

	footer := footerStyle.Render("Esc, ? ili q zatvara pomoć")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		globalHeader,
		globalTable,
		"",
		viewHeader,
		viewTable,
		"",
		footer,
	)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

func globalCommands() []Command {
	return []Command{
		{Key: "q", Description: "Izlaz (osim u formi)"},
		{Key: "ctrl+c", Description: "Izlaz iz bilo kog ekrana"},
		{Key: "?", Description: "Ovaj ekran"},
	}
}

// renderCommandTable renders the commands as a formatted table.
func (hv *HelpView) renderCommandTable(commands []Command) string {
	if len(commands) == 0 {
		return ""
	}

	maxKeyLen := 0
	for _, cmd := range commands {
		if n := lipgloss.Width(cmd.Key); n > maxKeyLen {
			maxKeyLen = n
		}
	}

	keyColWidth := maxKeyLen + 2
	descColWidth := hv.width - keyColWidth - 6 // borders and padding
	if descColWidth < 20 {
		descColWidth = 20
	}

	separatorWidth := hv.width - 4
	if separatorWidth < keyColWidth+descColWidth {
		separatorWidth = keyColWidth + descColWidth
	}

	separator := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render(strings.Repeat("─", separatorWidth))

	keyStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		Padding(0, 1).
		Width(keyColWidth)

	descStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Text).
		Padding(0, 1).
		Width(descColWidth)

	rows := []string{separator}
	for _, cmd := range commands {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Left,
			keyStyle.Render(cmd.Key),
			descStyle.Render(cmd.Description),
		))
	}

	return strings.Join(rows, "\n")
}
