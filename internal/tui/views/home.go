package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
	"github.com/asteroid-belt/zelenko/internal/tui/design"
	"github.com/asteroid-belt/zelenko/internal/tui/theme"
	"github.com/asteroid-belt/zelenko/internal/watering"
)

// HomeAction represents an action the model should take after a key press.
type HomeAction int

const (
	HomeActionNone HomeAction = iota
	HomeActionSelect
	HomeActionNew
	HomeActionWater
	HomeActionOnboarding
)

// Layout constants for the home list.
const (
	homeHeaderLines = 9
	homeFooterLines = 2
	homeRowLines    = 4
)

// HomeView lists every plant, newest first, with its watering status.
type HomeView struct {
	app *app.App

	plants       []models.Plant
	now          time.Time
	selectedIdx  int
	scrollOffset int

	width  int
	height int
}

// NewHomeView creates a new HomeView.
func NewHomeView(a *app.App) *HomeView {
	hv := &HomeView{app: a}
	hv.Refresh()
	return hv
}

// Refresh reloads the plant list and the current time.
func (hv *HomeView) Refresh() {
	hv.plants = hv.app.Plants.Plants()
	hv.now = hv.app.Now()
	if hv.selectedIdx >= len(hv.plants) {
		hv.selectedIdx = len(hv.plants) - 1
	}
	if hv.selectedIdx < 0 {
		hv.selectedIdx = 0
	}
	hv.adjustScrollForSelection()
}

// SelectID moves the cursor to the plant with id, if listed.
func (hv *HomeView) SelectID(id string) {
	for i, p := range hv.plants {
		if p.ID == id {
			hv.selectedIdx = i
			hv.adjustScrollForSelection()
			return
		}
	}
}

// Selected returns the plant under the cursor.
func (hv *HomeView) Selected() (models.Plant, bool) {
	if hv.selectedIdx < 0 || hv.selectedIdx >= len(hv.plants) {
		return models.Plant{}, false
	}
	return hv.plants[hv.selectedIdx], true
}

// Update handles user input and returns the action to perform.
func (hv *HomeView) Update(key string) HomeAction {
	switch key {
	case "up", "k":
		if hv.selectedIdx > 0 {
			hv.selectedIdx--
			hv.adjustScrollForSelection()
		}
	case "down", "j":
		if hv.selectedIdx < len(hv.plants)-1 {
			hv.selectedIdx++
			hv.adjustScrollForSelection()
		}
	case "enter":
		if _, ok := hv.Selected(); ok {
			return HomeActionSelect
		}
	case "n":
		return HomeActionNew
	case "w":
		if _, ok := hv.Selected(); ok {
			return HomeActionWater
		}
	case "o":
		return HomeActionOnboarding
	}
	return HomeActionNone
}

// maxVisibleRows returns how many plant rows fit on screen.
func (hv *HomeView) maxVisibleRows() int {
	if hv.height == 0 {
		return len(hv.plants)
	}
	rows := (hv.height - homeHeaderLines - homeFooterLines) / homeRowLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (hv *HomeView) adjustScrollForSelection() {
	visible := hv.maxVisibleRows()
	if hv.selectedIdx < hv.scrollOffset {
		hv.scrollOffset = hv.selectedIdx
	}
	if hv.selectedIdx >= hv.scrollOffset+visible {
		hv.scrollOffset = hv.selectedIdx - visible + 1
	}
	if hv.scrollOffset < 0 {
		hv.scrollOffset = 0
	}
}

// SetSize sets the width and height of the view.
func (hv *HomeView) SetSize(w, h int) {
	hv.width = w
	hv.height = h
	hv.adjustScrollForSelection()
}

// View renders the home view.
func (hv *HomeView) View() string {
	header := hv.renderHeader()
	if len(hv.plants) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, hv.renderEmptyState())
	}

	end := hv.scrollOffset + hv.maxVisibleRows()
	if end > len(hv.plants) {
		end = len(hv.plants)
	}

	rows := make([]string, 0, end-hv.scrollOffset)
	for i := hv.scrollOffset; i < end; i++ {
		rows = append(rows, hv.renderRow(hv.plants[i], i == hv.selectedIdx))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
		hv.renderScrollIndicator(end),
	)
}

func (hv *HomeView) renderHeader() string {
	logo := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		Render(design.Logo(hv.width))

	count := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		PaddingTop(1).
		Render(fmt.Sprintf("%s (%d)", locale.AppName, len(hv.plants)))

	headerStyle := lipgloss.NewStyle().Padding(1, 0)
	if hv.width > 0 {
		headerStyle = headerStyle.Width(hv.width).Align(lipgloss.Center)
	}
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, logo, count))
}

func (hv *HomeView) renderRow(p models.Plant, selected bool) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Text).
		Bold(true)
	borderColor := theme.Current.Overlay
	if selected {
		nameStyle = nameStyle.Foreground(theme.Current.TextHighlight)
		borderColor = theme.Current.Primary
	}

	lines := []string{
		nameStyle.Render(p.Name),
		lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Render(locale.WateringEvery(p.WateringFrequencyDays)),
	}
	if banner := renderStatusBanner(watering.Derive(p, hv.now)); banner != "" {
		lines = append(lines, banner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(borderColor).
		PaddingLeft(1).
		MarginLeft(2).
		MarginBottom(1).
		Render(strings.Join(lines, "\n"))
}

// renderStatusBanner renders the colored status line, or "" for no status.
func renderStatusBanner(r watering.Result) string {
	msg := r.Message()
	if msg == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.StatusColor(r.Status)).
		Bold(true).
		Render(msg)
}

func (hv *HomeView) renderScrollIndicator(end int) string {
	if hv.scrollOffset == 0 && end == len(hv.plants) {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		MarginLeft(2).
		Render(fmt.Sprintf("%d-%d / %d", hv.scrollOffset+1, end, len(hv.plants)))
}

func (hv *HomeView) renderEmptyState() string {
	title := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		Render("🪴 " + locale.AddFirstPlant)
	hint := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		Render("n " + strings.ToLower(locale.AddPlant))

	return lipgloss.NewStyle().
		MarginLeft(2).
		MarginTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, hint))
}

// GetKeyboardCommands returns the keyboard commands for this view.
func (hv *HomeView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Početna",
		Commands: []Command{
			{Key: "↑↓, k/j", Description: "Kretanje kroz listu"},
			{Key: "Enter", Description: "Detalji biljke"},
			{Key: "n", Description: locale.AddPlant},
			{Key: "w", Description: locale.WaterMe},
			{Key: "o", Description: locale.BackToOnboarding},
		},
	}
}
