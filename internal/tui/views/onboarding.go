package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/tui/design"
	"github.com/asteroid-belt/zelenko/internal/tui/theme"
)

const onboardingMarkdown = `## ` + locale.Tagline + `

- Dodaj svaku biljku i koliko često je zalivaš.
- Pritisni **w** kad je zaliješ i Zelenko pamti datum.
- Na početnom ekranu odmah vidiš kome treba vode.
`

// OnboardingView is the welcome screen shown until the user lets themselves in.
type OnboardingView struct {
	width   int
	height  int
	content []string
}

// NewOnboardingView creates a new onboarding view.
func NewOnboardingView() *OnboardingView {
	return &OnboardingView{}
}

// SetSize sets the width and height of the view and re-renders the text.
func (v *OnboardingView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.content = nil
}

// Update handles key input. Returns true when the user pressed the
// let-me-in button.
func (v *OnboardingView) Update(key string) bool {
	return key == "enter" || key == " "
}

// View renders the onboarding view.
func (v *OnboardingView) View() string {
	if v.content == nil {
		wrap := v.width * 80 / 100
		if wrap < 40 {
			wrap = 40
		}
		v.content = RenderMarkdown(onboardingMarkdown, wrap)
	}

	logo := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		Render(design.Logo(v.width))

	button := lipgloss.NewStyle().
		Foreground(theme.Current.TextHighlight).
		Background(theme.Current.Primary).
		Bold(true).
		Padding(0, 3).
		MarginTop(1).
		Render(locale.LetMeIn)

	hint := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		Render("enter")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		strings.Join(v.content, "\n"),
		button,
		hint,
	)

	if v.width == 0 || v.height == 0 {
		return content
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}

// GetKeyboardCommands returns the keyboard commands for this view.
func (v *OnboardingView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Onboarding",
		Commands: []Command{
			{Key: "Enter", Description: locale.LetMeIn},
		},
	}
}
