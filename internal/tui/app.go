package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
	"github.com/asteroid-belt/zelenko/internal/tui/components"
	"github.com/asteroid-belt/zelenko/internal/tui/views"
	"github.com/asteroid-belt/zelenko/pkg/version"
)

// ViewType identifies the current view.
type ViewType int

const (
	ViewOnboarding ViewType = iota
	ViewHome
	ViewDetail
	ViewForm
	ViewHelp
)

// String returns the view name reported to telemetry.
func (v ViewType) String() string {
	switch v {
	case ViewOnboarding:
		return "onboarding"
	case ViewHome:
		return "home"
	case ViewDetail:
		return "detail"
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// refreshInterval is how often statuses are re-derived so a day boundary
// shows up without any input.
const refreshInterval = time.Minute

// footerLines is the height reserved below every view.
const footerLines = 1

// Message types for Bubble Tea
type tickMsg time.Time

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	app       *app.App
	telemetry telemetry.Client
	keymap    Keymap
	styles    Styles

	// Views
	currentView    ViewType
	previousView   ViewType
	helpReturnView ViewType // where to return when closing help
	onboardingView *views.OnboardingView
	homeView       *views.HomeView
	detailView     *views.DetailView
	formView       *views.FormView
	helpView       *views.HelpView

	// Delete confirmation dialog
	deleteDialog  *components.ConfirmDialog
	pendingDelete string

	// State
	width    int
	height   int
	ready    bool
	quitting bool
	notice   string
	err      error

	// Session tracking
	sessionStart  time.Time
	viewsVisited  int
	plantsAdded   int
	plantsWatered int
	plantsRemoved int
}

// NewModel creates the TUI model for a.
func NewModel(a *app.App) *Model {
	tc := a.Telemetry
	if tc == nil {
		tc = telemetry.Noop()
	}

	m := &Model{
		app:            a,
		telemetry:      tc,
		keymap:         DefaultKeymap(),
		styles:         DefaultStyles(),
		onboardingView: views.NewOnboardingView(),
		homeView:       views.NewHomeView(a),
		detailView:     views.NewDetailView(a),
		formView:       views.NewFormView(),
		helpView:       views.NewHelpView(tc),
		sessionStart:   time.Now(),
		currentView:    ViewHome,
	}
	if !a.Onboarding.HasFinishedOnboarding() {
		m.currentView = ViewOnboarding
	}
	m.previousView = m.currentView
	return m
}

// Init starts the refresh ticker.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all messages and user input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.setViewSizes()
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.currentView == ViewForm {
		_, cmd := m.formView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setViewSizes() {
	h := m.height - footerLines
	if h < 0 {
		h = 0
	}
	m.onboardingView.SetSize(m.width, h)
	m.homeView.SetSize(m.width, h)
	m.detailView.SetSize(m.width, h)
	m.formView.SetSize(m.width, h)
	m.helpView.SetSize(m.width, h)
}

// refresh re-reads plants and the clock for the list and detail views.
func (m *Model) refresh() {
	m.homeView.Refresh()
	m.detailView.Refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}

	if m.deleteDialog != nil {
		done, confirmed := m.deleteDialog.Update(msg.String())
		if done {
			id := m.pendingDelete
			m.deleteDialog = nil
			m.pendingDelete = ""
			if confirmed {
				m.removePlant(id)
			}
		}
		return m, nil
	}

	if m.currentView == ViewForm {
		return m.handleFormMsg(msg)
	}

	m.notice = ""
	m.err = nil

	if m.currentView == ViewHelp {
		if m.helpView.Update(msg.String()) {
			m.navigate(m.helpReturnView)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.showHelp()
		return m, nil
	}

	switch m.currentView {
	case ViewOnboarding:
		if m.onboardingView.Update(msg.String()) {
			m.app.ToggleOnboarding(telemetry.SourceTUI)
			m.navigate(ViewHome)
		}
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.homeView.Update(msg.String()) {
	case views.HomeActionSelect:
		if p, ok := m.homeView.Selected(); ok {
			m.detailView.SetPlant(p.ID)
			m.navigate(ViewDetail)
		}
	case views.HomeActionNew:
		cmd := m.formView.StartNew()
		m.navigate(ViewForm)
		return m, cmd
	case views.HomeActionWater:
		if p, ok := m.homeView.Selected(); ok {
			m.waterPlant(p.ID)
		}
	case views.HomeActionOnboarding:
		m.app.ToggleOnboarding(telemetry.SourceTUI)
		m.navigate(ViewOnboarding)
	}
	return m, nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.detailView.Update(msg.String()) {
	case views.DetailActionBack:
		m.navigate(ViewHome)
	case views.DetailActionWater:
		if p, ok := m.detailView.Plant(); ok {
			m.waterPlant(p.ID)
		}
	case views.DetailActionEdit:
		if p, ok := m.detailView.Plant(); ok {
			cmd := m.formView.StartEdit(p)
			m.navigate(ViewForm)
			return m, cmd
		}
	case views.DetailActionDelete:
		if p, ok := m.detailView.Plant(); ok {
			m.deleteDialog = components.NewConfirmDialog(
				locale.DeleteTitle(p.Name), locale.CannotUndo, locale.Delete, locale.Cancel)
			m.pendingDelete = p.ID
		}
	}
	return m, nil
}

func (m *Model) handleFormMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.formView.Update(msg)
	switch action {
	case views.FormActionCancel:
		m.navigate(m.previousView)
		return m, nil
	case views.FormActionSubmit:
		return m, m.submitForm()
	}
	return m, cmd
}

// submitForm saves the form. Validation and image errors stay on the form.
func (m *Model) submitForm() tea.Cmd {
	var (
		plant models.Plant
		err   error
	)
	editing := m.formView.Mode() == views.FormModeEdit
	if editing {
		plant, err = m.app.UpdatePlant(telemetry.SourceTUI, m.formView.PlantID(), m.formView.PlantEdit())
	} else {
		plant, err = m.app.AddPlant(telemetry.SourceTUI, m.formView.NewPlant())
	}

	if err != nil {
		var verr *app.ValidationError
		switch {
		case errors.As(err, &verr):
			m.telemetry.TrackErrorDisplayed("validation", m.currentView.String())
		case errors.Is(err, app.ErrPlantNotFound):
			// Removed while the form was open.
			m.detailView.SetPlant(m.formView.PlantID())
			m.navigate(ViewDetail)
			return nil
		default:
			m.telemetry.TrackErrorDisplayed("image", m.currentView.String())
		}
		return m.formView.SetError(err)
	}

	if editing {
		m.detailView.SetPlant(plant.ID)
		m.navigate(ViewDetail)
		return nil
	}

	m.plantsAdded++
	m.homeView.Refresh()
	m.homeView.SelectID(plant.ID)
	m.navigate(ViewHome)
	return nil
}

func (m *Model) waterPlant(id string) {
	p, err := m.app.WaterPlant(telemetry.SourceTUI, id)
	if err != nil {
		m.setError(err, "not_found")
		return
	}
	m.plantsWatered++
	m.refresh()
	m.notice = fmt.Sprintf("💧 %s", p.Name)
}

func (m *Model) removePlant(id string) {
	p, err := m.app.RemovePlant(telemetry.SourceTUI, id)
	if err != nil {
		m.setError(err, "not_found")
		return
	}
	m.plantsRemoved++
	m.notice = fmt.Sprintf("%s: %s", locale.Delete, p.Name)
	m.navigate(ViewHome)
}

// navigate switches views and tracks the change for telemetry.
func (m *Model) navigate(to ViewType) {
	switch to {
	case ViewHome:
		m.homeView.Refresh()
	case ViewDetail:
		m.detailView.Refresh()
	}
	if to == m.currentView {
		return
	}
	m.telemetry.TrackViewNavigated(to.String(), m.currentView.String())
	m.viewsVisited++
	m.previousView = m.currentView
	m.currentView = to
}

func (m *Model) showHelp() {
	m.helpReturnView = m.currentView
	m.helpView.SetViewCommands(m.currentViewCommands())
	m.navigate(ViewHelp)
}

// currentViewCommands returns the keyboard commands for the current view.
func (m *Model) currentViewCommands() views.ViewCommands {
	switch m.currentView {
	case ViewOnboarding:
		return m.onboardingView.GetKeyboardCommands()
	case ViewDetail:
		return m.detailView.GetKeyboardCommands()
	case ViewForm:
		return m.formView.GetKeyboardCommands()
	default:
		return m.homeView.GetKeyboardCommands()
	}
}

func (m *Model) setError(err error, errorType string) {
	m.err = err
	m.telemetry.TrackErrorDisplayed(errorType, m.currentView.String())
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.trackSessionSummary()
	return m, tea.Quit
}

// trackSessionSummary reports what happened during this session.
func (m *Model) trackSessionSummary() {
	m.telemetry.TrackSessionSummary(
		time.Since(m.sessionStart).Milliseconds(),
		m.viewsVisited,
		m.plantsAdded,
		m.plantsWatered,
		m.plantsRemoved,
	)
}

// View renders the current view.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Učitavanje..."
	}

	if m.deleteDialog != nil {
		return m.deleteDialog.CenteredView(m.width, m.height)
	}

	var content string
	switch m.currentView {
	case ViewOnboarding:
		content = m.onboardingView.View()
	case ViewHome:
		content = m.homeView.View()
	case ViewDetail:
		content = m.detailView.View()
	case ViewForm:
		content = m.formView.View()
	case ViewHelp:
		content = m.helpView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

func (m *Model) renderFooter() string {
	var left string
	switch {
	case m.err != nil:
		left = m.styles.StatusError.Render(m.err.Error())
	case m.notice != "":
		left = m.styles.StatusInfo.Render(m.notice)
	case m.currentView == ViewHome:
		left = m.styles.Footer.Render(m.keymap.QuickHelpText())
	}

	right := m.styles.FooterRight.Render(version.Display())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// Run executes the TUI program.
func Run(a *app.App) error {
	p := tea.NewProgram(NewModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
