// Package telemetry provides anonymous usage tracking via PostHog.
package telemetry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

// PostHogAPIKey is set at compile time via ldflags.
var PostHogAPIKey string

// TrackingIDProvider is an interface for getting tracking IDs.
// This allows for testing without a real database.
type TrackingIDProvider interface {
	GetOrCreateTrackingID() string
}

// Client interface for telemetry operations.
type Client interface {
	Track(event string, properties map[string]interface{})
	Close()
	GetTrackingID() string

	// CLI events
	TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64)
	TrackCLIError(commandName, errorType string)
	TrackCLIHelpViewed(commandName string, cliArgs []string)

	// Plant events, from both CLI and TUI
	TrackPlantAdded(source string, frequencyDays int, hasImage bool)
	TrackPlantRemoved(source string, hadImage bool)
	TrackPlantWatered(source, statusBefore string)
	TrackPlantUpdated(source string, fieldsChanged int)
	TrackPlantViewed(source, status string)
	TrackPlantsListed(source string, count, needingWater int)
	TrackOnboardingToggled(source string, finished bool)

	// TUI events
	TrackViewNavigated(viewName, previousView string)
	TrackPlantCopied()
	TrackHelpViewed(contextView string)
	TrackErrorDisplayed(errorType, contextView string)

	// Used in CLI & TUI
	TrackAppStarted(mode string, plantCount int)
	TrackAppExited(mode string, sessionDurationMs int64, commandsRun int)

	// Session events
	TrackSessionSummary(durationMs int64, viewsVisited, plantsAdded, plantsWatered, plantsRemoved int)
}

// posthogClient wraps the PostHog SDK.
type posthogClient struct {
	client    posthog.Client
	sessionID string
	mu        sync.Mutex
}

// noopClient does nothing (for disabled telemetry).
type noopClient struct{}

// IsEnabled reports whether events can be sent.
// Telemetry is opt-out: on unless disabled in config, but builds without an
// API key never track.
func IsEnabled(configured bool) bool {
	return configured && PostHogAPIKey != ""
}

// New creates a new telemetry client with a persistent tracking ID from the database.
// If provider is nil, a new UUID is generated per session (fallback behavior).
func New(enabled bool, provider TrackingIDProvider) Client {
	if !IsEnabled(enabled) {
		return &noopClient{}
	}

	client, err := posthog.NewWithConfig(PostHogAPIKey, posthog.Config{
		Endpoint:  "https://us.i.posthog.com",
		BatchSize: 250,
		Interval:  5 * time.Second,
	})
	if err != nil {
		return &noopClient{}
	}

	var sessionID string
	if provider != nil {
		sessionID = provider.GetOrCreateTrackingID()
	} else {
		sessionID = uuid.New().String()
	}

	return &posthogClient{
		client:    client,
		sessionID: sessionID,
	}
}

// Noop returns a client that drops every event.
func Noop() Client {
	return &noopClient{}
}

// Track sends an event to PostHog.
func (c *posthogClient) Track(event string, properties map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	props := posthog.NewProperties()
	props.Set("$process_person_profile", true)
	props.Set("$geoip_disable", true)

	for k, v := range properties {
		props.Set(k, v)
	}

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.sessionID,
		Event:      event,
		Properties: props,
	})
}

// Close flushes remaining events and closes the client.
func (c *posthogClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.client.Close()
}

// GetTrackingID returns the anonymous tracking ID for the session.
func (c *posthogClient) GetTrackingID() string {
	return c.sessionID
}

// Track is a no-op for disabled telemetry.
func (c *noopClient) Track(event string, properties map[string]interface{}) {}

// Close is a no-op for disabled telemetry.
func (c *noopClient) Close() {}

// GetTrackingID returns empty string for disabled telemetry.
func (c *noopClient) GetTrackingID() string {
	return ""
}
