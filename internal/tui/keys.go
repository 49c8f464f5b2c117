package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keymap defines all key bindings for the TUI.
type Keymap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding

	// Actions
	New        key.Binding
	Water      key.Binding
	Onboarding key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "gore"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "dole"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "otvori"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "nazad"),
		),

		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "nova biljka"),
		),
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "zalij"),
		),
		Onboarding: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "onboarding"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "pomoć"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "izlaz"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "izlaz"),
		),
	}
}

// QuickHelpText returns condensed help text for the footer.
func (k Keymap) QuickHelpText() string {
	bindings := []key.Binding{k.Up, k.Select, k.New, k.Water, k.Help, k.Quit}
	text := ""
	for i, b := range bindings {
		if i > 0 {
			text += " • "
		}
		h := b.Help()
		text += h.Key + " " + h.Desc
	}
	return text
}
