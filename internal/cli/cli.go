// Package cli provides the command-line interface for Zelenko.
package cli

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
	"github.com/asteroid-belt/zelenko/pkg/version"
)

var telemetryClient telemetry.Client = telemetry.Noop()

var commandStartTime time.Time

// ephemeral keeps every change in memory for this run.
var ephemeral bool

var rootCmd = &cobra.Command{
	Use:   "zelenko",
	Short: "Houseplant watering reminders",
	Long: `Houseplant watering reminders

Keep a list of your plants and how often each one needs water.
Zelenko shows which plants are due, overdue or coming up soon.

Run without arguments to launch the interactive TUI.

Configuration (environment or .env):
  ZELENKO_DATA_DIR                    data directory (default $XDG_DATA_HOME/zelenko)
  ZELENKO_STORAGE_BACKEND             db, file or memory (default db)
  ZELENKO_TIMEZONE                    zone for day boundaries (default system)

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never track
  plant names, images, or IP addresses.

  Opt-out with:
  	ZELENKO_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runTUI,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Track command execution (skip for root TUI command)
		if cmd.Name() != "zelenko" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}

		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false,
		"Keep changes in memory only; nothing is saved")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(onboardingCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(waterCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.Noop()
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Display()),
		fang.WithCommit(version.Commit),
	)

	// Track app exit for CLI mode (non-TUI subcommands)
	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "zelenko" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs, 1)
	}

	return err
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation_error"
	case errors.Is(err, app.ErrPlantNotFound):
		return "not_found_error"
	case errors.Is(err, app.ErrImageSave):
		return "image_error"
	}

	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration", "timezone", "backend"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist", "no such file"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
