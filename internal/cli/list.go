package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
	"github.com/asteroid-belt/zelenko/internal/watering"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plants and their watering status",
	Long: `List every plant, newest first.

Each entry shows the plant id, its watering interval and, when it needs
attention, whether it is due, overdue or coming up tomorrow.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("list", err)
	}
	defer done()

	plants := a.Plants.Plants()
	now := a.Now()
	out := cmd.OutOrStdout()

	needingWater := 0
	for _, p := range plants {
		if watering.Derive(p, now).NeedsWater() {
			needingWater++
		}
	}
	telemetryClient.TrackPlantsListed(telemetry.SourceCLI, len(plants), needingWater)

	if len(plants) == 0 {
		_, _ = fmt.Fprintln(out, locale.AddFirstPlant)
		_, _ = fmt.Fprintln(out, "\nzelenko add <ime> --every <dana>")
		return nil
	}

	_, _ = fmt.Fprintf(out, "%s (%d)\n", locale.AppName, len(plants))
	_, _ = fmt.Fprintln(out, "──────────────────────────────────────────────────")

	for _, p := range plants {
		status := watering.Derive(p, now)
		_, _ = fmt.Fprintf(out, "#%-4s %s\n", p.ID, p.Name)
		_, _ = fmt.Fprintf(out, "      %s\n", locale.WateringEvery(p.WateringFrequencyDays))
		if msg := status.Message(); msg != "" {
			_, _ = fmt.Fprintf(out, "      %s\n", msg)
		}
	}

	return nil
}
