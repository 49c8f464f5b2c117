package telemetry

import (
	"runtime"

	"github.com/asteroid-belt/zelenko/pkg/version"
)

// Event names - CLI
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventCLIHelpViewed      = "cli_help_viewed"
)

// Event names - plants
const (
	EventPlantAdded        = "plant_added"
	EventPlantRemoved      = "plant_removed"
	EventPlantWatered      = "plant_watered"
	EventPlantUpdated      = "plant_updated"
	EventPlantViewed       = "plant_viewed"
	EventPlantsListed      = "plants_listed"
	EventOnboardingToggled = "onboarding_toggled"
	EventPlantCopied       = "plant_copied"
	EventViewNavigated     = "view_navigated"
	EventHelpViewed        = "help_viewed"
	EventErrorDisplayed    = "error_displayed"
	EventSessionSummary    = "session_summary"
)

// Event sources
const (
	SourceCLI = "cli"
	SourceTUI = "tui"
)

// Version is set at compile time via ldflags.
var Version string

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	v := Version
	if v == "" {
		v = version.Version
	}
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    v,
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
		"channel":    version.Channel(),
	}
}

// --- CLI Tracking Methods ---

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string, plantCount int) {
	props := baseProperties()
	props["mode"] = mode
	props["has_plants"] = plantCount > 0
	props["plant_count"] = plantCount
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	props["commands_run"] = commandsRun
	c.Track(EventAppExited, props)
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks CLI errors by classified type.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackCLIHelpViewed tracks help output. Arguments are counted, never sent,
// because they may contain plant names.
func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["arg_count"] = len(cliArgs)
	c.Track(EventCLIHelpViewed, props)
}

// --- Plant Tracking Methods ---

// TrackPlantAdded tracks a new plant. The name is never sent.
func (c *posthogClient) TrackPlantAdded(source string, frequencyDays int, hasImage bool) {
	props := baseProperties()
	props["source"] = source
	props["frequency_days"] = frequencyDays
	props["has_image"] = hasImage
	c.Track(EventPlantAdded, props)
}

// TrackPlantRemoved tracks plant deletion.
func (c *posthogClient) TrackPlantRemoved(source string, hadImage bool) {
	props := baseProperties()
	props["source"] = source
	props["had_image"] = hadImage
	c.Track(EventPlantRemoved, props)
}

// TrackPlantWatered tracks a watering and the status it cleared.
func (c *posthogClient) TrackPlantWatered(source, statusBefore string) {
	props := baseProperties()
	props["source"] = source
	props["status_before"] = statusBefore
	c.Track(EventPlantWatered, props)
}

// TrackPlantUpdated tracks an edit.
func (c *posthogClient) TrackPlantUpdated(source string, fieldsChanged int) {
	props := baseProperties()
	props["source"] = source
	props["fields_changed"] = fieldsChanged
	c.Track(EventPlantUpdated, props)
}

// TrackPlantViewed tracks detail views.
func (c *posthogClient) TrackPlantViewed(source, status string) {
	props := baseProperties()
	props["source"] = source
	props["status"] = status
	c.Track(EventPlantViewed, props)
}

// TrackPlantsListed tracks list views.
func (c *posthogClient) TrackPlantsListed(source string, count, needingWater int) {
	props := baseProperties()
	props["source"] = source
	props["count"] = count
	props["needing_water"] = needingWater
	c.Track(EventPlantsListed, props)
}

// TrackOnboardingToggled tracks the onboarding flag flip.
func (c *posthogClient) TrackOnboardingToggled(source string, finished bool) {
	props := baseProperties()
	props["source"] = source
	props["finished"] = finished
	c.Track(EventOnboardingToggled, props)
}

// --- TUI Tracking Methods ---

// TrackViewNavigated tracks view navigation.
func (c *posthogClient) TrackViewNavigated(viewName, previousView string) {
	props := baseProperties()
	props["view_name"] = viewName
	props["previous_view"] = previousView
	c.Track(EventViewNavigated, props)
}

// TrackPlantCopied tracks copying a plant summary to the clipboard.
func (c *posthogClient) TrackPlantCopied() {
	c.Track(EventPlantCopied, baseProperties())
}

// TrackHelpViewed tracks help modal views.
func (c *posthogClient) TrackHelpViewed(contextView string) {
	props := baseProperties()
	props["context_view"] = contextView
	c.Track(EventHelpViewed, props)
}

// TrackErrorDisplayed tracks error display.
func (c *posthogClient) TrackErrorDisplayed(errorType, contextView string) {
	props := baseProperties()
	props["error_type"] = errorType
	props["context_view"] = contextView
	c.Track(EventErrorDisplayed, props)
}

// --- Session Tracking Methods ---

// TrackSessionSummary tracks session summary on exit.
func (c *posthogClient) TrackSessionSummary(durationMs int64, viewsVisited, plantsAdded, plantsWatered, plantsRemoved int) {
	props := baseProperties()
	props["duration_ms"] = durationMs
	props["views_visited"] = viewsVisited
	props["plants_added"] = plantsAdded
	props["plants_watered"] = plantsWatered
	props["plants_removed"] = plantsRemoved
	c.Track(EventSessionSummary, props)
}

// --- noopClient implementations (no-ops) ---

func (c *noopClient) TrackAppStarted(mode string, plantCount int)                                 {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int)        {}
func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                                 {}
func (c *noopClient) TrackCLIHelpViewed(commandName string, cliArgs []string)                     {}
func (c *noopClient) TrackPlantAdded(source string, frequencyDays int, hasImage bool)             {}
func (c *noopClient) TrackPlantRemoved(source string, hadImage bool)                              {}
func (c *noopClient) TrackPlantWatered(source, statusBefore string)                               {}
func (c *noopClient) TrackPlantUpdated(source string, fieldsChanged int)                          {}
func (c *noopClient) TrackPlantViewed(source, status string)                                      {}
func (c *noopClient) TrackPlantsListed(source string, count, needingWater int)                    {}
func (c *noopClient) TrackOnboardingToggled(source string, finished bool)                         {}
func (c *noopClient) TrackViewNavigated(viewName, previousView string)                            {}
func (c *noopClient) TrackPlantCopied()                                                           {}
func (c *noopClient) TrackHelpViewed(contextView string)                                          {}
func (c *noopClient) TrackErrorDisplayed(errorType, contextView string)                           {}
func (c *noopClient) TrackSessionSummary(durationMs int64, viewsVisited, plantsAdded, plantsWatered, plantsRemoved int) {
}
