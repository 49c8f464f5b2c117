package views

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
	"github.com/asteroid-belt/zelenko/internal/tui/theme"
)

// FormMode tells whether the form creates or edits a plant.
type FormMode int

const (
	FormModeNew FormMode = iota
	FormModeEdit
)

// FormAction represents an action the model should take after a key press.
type FormAction int

const (
	FormActionNone FormAction = iota
	FormActionCancel
	FormActionSubmit
)

// Field indexes.
const (
	fieldName = iota
	fieldDays
	fieldImage
	fieldCount
)

// FormView is the new/edit plant form.
type FormView struct {
	mode          FormMode
	plantID       string
	originalImage string

	inputs [fieldCount]textinput.Model
	focus  int
	err    string

	width  int
	height int
}

// NewFormView creates a new form view.
func NewFormView() *FormView {
	fv := &FormView{}
	placeholders := [fieldCount]string{locale.NamePlaceholder, locale.DaysPlaceholder, "npr. slike/fikus.jpg"}
	limits := [fieldCount]int{60, 4, 512}
	for i := range fv.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 40
		ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Current.Text)
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Current.Accent)
		ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Current.Primary)
		fv.inputs[i] = ti
	}
	return fv
}

// StartNew resets the form for a new plant.
func (fv *FormView) StartNew() tea.Cmd {
	fv.mode = FormModeNew
	fv.plantID = ""
	fv.originalImage = ""
	for i := range fv.inputs {
		fv.inputs[i].Reset()
	}
	return fv.setFocus(fieldName)
}

// StartEdit fills the form with p.
func (fv *FormView) StartEdit(p models.Plant) tea.Cmd {
	fv.mode = FormModeEdit
	fv.plantID = p.ID
	fv.originalImage = p.ImageURI
	fv.inputs[fieldName].SetValue(p.Name)
	fv.inputs[fieldDays].SetValue(strconv.Itoa(p.WateringFrequencyDays))
	fv.inputs[fieldImage].SetValue(p.ImageURI)
	for i := range fv.inputs {
		fv.inputs[i].CursorEnd()
	}
	return fv.setFocus(fieldName)
}

// Mode returns the current form mode.
func (fv *FormView) Mode() FormMode {
	return fv.mode
}

// PlantID returns the id of the plant being edited.
func (fv *FormView) PlantID() string {
	return fv.plantID
}

// NewPlant returns the form values as a create request.
func (fv *FormView) NewPlant() app.NewPlant {
	return app.NewPlant{
		Name:  fv.inputs[fieldName].Value(),
		Days:  fv.inputs[fieldDays].Value(),
		Image: fv.inputs[fieldImage].Value(),
	}
}

// PlantEdit returns the form values as an edit request. An emptied image
// field clears the image.
func (fv *FormView) PlantEdit() app.PlantEdit {
	name := fv.inputs[fieldName].Value()
	days := fv.inputs[fieldDays].Value()
	image := fv.inputs[fieldImage].Value()
	return app.PlantEdit{
		Name:       &name,
		Days:       &days,
		Image:      image,
		ClearImage: image == "" && fv.originalImage != "",
	}
}

// SetError shows msg under the form and focuses the field it refers to.
func (fv *FormView) SetError(err error) tea.Cmd {
	if err == nil {
		fv.err = ""
		return nil
	}
	fv.err = err.Error()
	var verr *app.ValidationError
	if errors.As(err, &verr) {
		switch verr.Field {
		case app.FieldName:
			return fv.setFocus(fieldName)
		case app.FieldDays:
			return fv.setFocus(fieldDays)
		}
	}
	return nil
}

// Error returns the message currently shown, if any.
func (fv *FormView) Error() string {
	return fv.err
}

func (fv *FormView) setFocus(i int) tea.Cmd {
	fv.focus = i
	var cmd tea.Cmd
	for j := range fv.inputs {
		if j == i {
			cmd = fv.inputs[j].Focus()
		} else {
			fv.inputs[j].Blur()
		}
	}
	return cmd
}

// Update handles key input and forwards other messages, such as cursor
// blinks, to the focused input.
func (fv *FormView) Update(msg tea.Msg) (FormAction, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		fv.inputs[fv.focus], cmd = fv.inputs[fv.focus].Update(msg)
		return FormActionNone, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return FormActionCancel, nil
	case "ctrl+s":
		return FormActionSubmit, nil
	case "enter":
		if fv.focus == fieldCount-1 {
			return FormActionSubmit, nil
		}
		return FormActionNone, fv.setFocus(fv.focus + 1)
	case "tab", "down":
		return FormActionNone, fv.setFocus((fv.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return FormActionNone, fv.setFocus((fv.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	fv.inputs[fv.focus], cmd = fv.inputs[fv.focus].Update(msg)
	fv.err = ""
	return FormActionNone, cmd
}

// SetSize sets the width and height of the view.
func (fv *FormView) SetSize(w, h int) {
	fv.width = w
	fv.height = h
}

// View renders the form.
func (fv *FormView) View() string {
	titleText, submitText := locale.AddPlant, locale.AddPlant
	imageHint := locale.AddImage
	if fv.mode == FormModeEdit {
		titleText, submitText = locale.EditPlant, locale.SaveChanges
		if fv.originalImage != "" {
			imageHint = locale.ChangeImage + " / " + locale.RemoveImage + " (isprazni polje)"
		}
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginBottom(1).
		Render(titleText)

	labels := [fieldCount]string{locale.NameLabel, locale.DaysLabel, locale.ImageLabel}
	parts := []string{title}
	for i := range fv.inputs {
		labelStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
		if i == fv.focus {
			labelStyle = labelStyle.Foreground(theme.Current.Accent).Bold(true)
		}
		parts = append(parts, labelStyle.Render(labels[i]), fv.inputs[i].View())
		if i == fieldImage {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Current.TextMuted).
				Italic(true).
				Render(imageHint))
		}
		parts = append(parts, "")
	}

	if fv.err != "" {
		errLabel := lipgloss.NewStyle().
			Foreground(theme.Current.Error).
			Bold(true).
			Render(locale.InputError + ": ")
		parts = append(parts, errLabel+fv.err, "")
	}

	submit := lipgloss.NewStyle().
		Foreground(theme.Current.TextHighlight).
		Background(theme.Current.Primary).
		Bold(true).
		Padding(0, 2).
		Render(submitText)
	hint := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render("  ctrl+s sačuvaj • tab sledeće polje • esc " + locale.Cancel)
	parts = append(parts, submit+hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Primary).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// GetKeyboardCommands returns the keyboard commands for this view.
func (fv *FormView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Forma",
		Commands: []Command{
			{Key: "tab, ↓", Description: "Sledeće polje"},
			{Key: "shift+tab, ↑", Description: "Prethodno polje"},
			{Key: "Enter", Description: "Sledeće polje, na poslednjem čuva"},
			{Key: "ctrl+s", Description: "Sačuvaj"},
			{Key: "Esc", Description: locale.Cancel},
		},
	}
}
