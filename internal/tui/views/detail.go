package views

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/images"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
	"github.com/asteroid-belt/zelenko/internal/tui/theme"
	"github.com/asteroid-belt/zelenko/internal/watering"
)

// DetailAction represents an action the model should take after a key press.
type DetailAction int

const (
	DetailActionNone DetailAction = iota
	DetailActionBack
	DetailActionWater
	DetailActionEdit
	DetailActionDelete
)

// DetailView displays one plant and its watering history.
type DetailView struct {
	app *app.App

	plantID string
	plant   models.Plant
	found   bool
	now     time.Time

	// notice is a one-shot status line, e.g. after copying.
	notice string

	// writeClipboard writes to the system clipboard; replaced in tests.
	writeClipboard func(string) error

	width  int
	height int
}

// NewDetailView creates a new DetailView.
func NewDetailView(a *app.App) *DetailView {
	return &DetailView{
		app:            a,
		writeClipboard: clipboard.WriteAll,
	}
}

// SetPlant shows the plant with id.
func (dv *DetailView) SetPlant(id string) {
	dv.plantID = id
	dv.notice = ""
	dv.Refresh()
}

// Refresh reloads the plant and the current time.
func (dv *DetailView) Refresh() {
	dv.plant, dv.found = dv.app.Plants.Plant(dv.plantID)
	dv.now = dv.app.Now()
}

// Plant returns the displayed plant; ok is false once it no longer exists.
func (dv *DetailView) Plant() (models.Plant, bool) {
	return dv.plant, dv.found
}

// Update handles key input.
func (dv *DetailView) Update(key string) DetailAction {
	dv.notice = ""

	switch key {
	case "esc", "backspace":
		return DetailActionBack
	}
	if !dv.found {
		return DetailActionNone
	}

	switch key {
	case "w":
		return DetailActionWater
	case "e":
		return DetailActionEdit
	case "d":
		return DetailActionDelete
	case "c":
		if err := dv.writeClipboard(watering.Summary(dv.plant, dv.now)); err != nil {
			dv.notice = "Kopiranje nije uspelo: " + err.Error()
			return DetailActionNone
		}
		dv.app.Telemetry.TrackPlantCopied()
		dv.notice = "Kopirano."
	}
	return DetailActionNone
}

// SetSize sets the width and height of the view.
func (dv *DetailView) SetSize(w, h int) {
	dv.width = w
	dv.height = h
}

// View renders the detail view.
func (dv *DetailView) View() string {
	if !dv.found {
		return dv.renderNotFound()
	}

	p := dv.plant
	d := watering.Describe(p, dv.now)

	title := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginBottom(1).
		Render(fmt.Sprintf("🌿 %s", p.Name))

	rows := []string{
		dv.renderMetadataRow(locale.ImageLabel, dv.imageText(p)),
		dv.renderMetadataRow(locale.WaterEveryLabel, d.Every),
		dv.renderMetadataRow(locale.LastWateredLabel, d.LastWatered),
		dv.renderMetadataRow(locale.DaysSinceLabel, d.DaysSince),
	}

	parts := []string{title, lipgloss.JoinVertical(lipgloss.Left, rows...)}
	if banner := renderStatusBanner(d.Status); banner != "" {
		parts = append(parts, "", banner)
	}
	if dv.notice != "" {
		parts = append(parts, "", lipgloss.NewStyle().
			Foreground(theme.Current.Info).
			Italic(true).
			Render(dv.notice))
	}
	parts = append(parts, "", dv.renderActions())

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (dv *DetailView) imageText(p models.Plant) string {
	if !p.HasImage() {
		return locale.DefaultImageLabel
	}
	if !images.Exists(p.ImageURI) {
		return p.ImageURI + " (nedostaje)"
	}
	return p.ImageURI
}

func (dv *DetailView) renderMetadataRow(label, value string) string {
	l := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render(label + ": ")
	v := lipgloss.NewStyle().
		Foreground(theme.Current.Text).
		Bold(true).
		Render(value)
	return l + v
}

func (dv *DetailView) renderActions() string {
	return lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render(fmt.Sprintf("w %s • e %s • d %s • c kopiraj • esc nazad",
			locale.WaterMe, locale.EditPlant, locale.Delete))
}

func (dv *DetailView) renderNotFound() string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Current.Error).
		Bold(true).
		Render(locale.PlantNotFound)
	hint := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render("esc nazad")
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, msg, "", hint))
}

// GetKeyboardCommands returns the keyboard commands for this view.
func (dv *DetailView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Detalji",
		Commands: []Command{
			{Key: "w", Description: locale.WaterMe},
			{Key: "e", Description: locale.EditPlant},
			{Key: "d", Description: locale.Delete + " (uz potvrdu)"},
			{Key: "c", Description: "Kopiraj opis biljke"},
			{Key: "Esc", Description: "Nazad na listu"},
		},
	}
}
