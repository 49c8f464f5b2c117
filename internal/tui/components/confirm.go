package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/tui/theme"
)

// ConfirmDialog is a simple yes/no confirmation dialog.
type ConfirmDialog struct {
	title    string
	message  string
	yesLabel string
	noLabel  string
	selected bool // false = no, true = yes
}

// NewConfirmDialog creates a new confirmation dialog with "No" preselected.
func NewConfirmDialog(title, message, yesLabel, noLabel string) *ConfirmDialog {
	return &ConfirmDialog{
		title:    title,
		message:  message,
		yesLabel: yesLabel,
		noLabel:  noLabel,
	}
}

// Title returns the dialog title.
func (c *ConfirmDialog) Title() string {
	return c.title
}

// SelectYes selects the "Yes" option.
func (c *ConfirmDialog) SelectYes() {
	c.selected = true
}

// SelectNo selects the "No" option.
func (c *ConfirmDialog) SelectNo() {
	c.selected = false
}

// IsYesSelected returns whether "Yes" is selected.
func (c *ConfirmDialog) IsYesSelected() bool {
	return c.selected
}

// Toggle switches between Yes and No.
func (c *ConfirmDialog) Toggle() {
	c.selected = !c.selected
}

// Update handles a key press. done is true once the user answered;
// confirmed is the answer.
func (c *ConfirmDialog) Update(key string) (done, confirmed bool) {
	switch key {
	case "left", "right", "h", "l", "tab":
		c.Toggle()
	case "y":
		return true, true
	case "n", "esc":
		return true, false
	case "enter":
		return true, c.selected
	}
	return false, false
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	button := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Padding(0, 2)
	active := button.
		Background(theme.Current.Error).
		Foreground(theme.Current.TextHighlight).
		Bold(true)

	yesStyle, noStyle := button, active
	if c.selected {
		yesStyle, noStyle = active, button
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"[ ",
		yesStyle.Render(c.yesLabel),
		" ] [ ",
		noStyle.Render(c.noLabel),
		" ]",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Error).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				lipgloss.NewStyle().Bold(true).Render(c.title),
				"",
				c.message,
				"",
				buttons,
			),
		)
}

// CenteredView renders the dialog centered on the screen.
func (c *ConfirmDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.View())
}
