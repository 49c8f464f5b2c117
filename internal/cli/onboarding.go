package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Show whether the welcome screen was dismissed",
	Long: `Show whether the welcome screen was dismissed.

The TUI opens on the welcome screen until it is dismissed. Use
'zelenko onboarding toggle' to bring it back or dismiss it.`,
	Args: cobra.NoArgs,
	RunE: runOnboarding,
}

var onboardingToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the welcome screen flag",
	Args:  cobra.NoArgs,
	RunE:  runOnboardingToggle,
}

func init() {
	onboardingCmd.AddCommand(onboardingToggleCmd)
}

func runOnboarding(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("onboarding", err)
	}
	defer done()

	printOnboarding(cmd.OutOrStdout(), a.Onboarding.HasFinishedOnboarding())
	return nil
}

func runOnboardingToggle(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("onboarding toggle", err)
	}
	defer done()

	printOnboarding(cmd.OutOrStdout(), a.ToggleOnboarding(telemetry.SourceCLI))
	return nil
}

func printOnboarding(w io.Writer, finished bool) {
	state := "ne"
	if finished {
		state = "da"
	}
	_, _ = fmt.Fprintf(w, "Onboarding završen: %s\n", state)
}
