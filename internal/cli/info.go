package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
	"github.com/asteroid-belt/zelenko/internal/watering"
)

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show details for a plant",
	Long: `Show the watering interval, the last watering, the days since and the
current status of one plant. Ids are listed by 'zelenko list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("info", err)
	}
	defer done()

	plant, ok := a.Plants.Plant(args[0])
	if !ok {
		return trackCLIError("info", app.ErrPlantNotFound)
	}

	now := a.Now()
	status := watering.Derive(plant, now)
	telemetryClient.TrackPlantViewed(telemetry.SourceCLI, status.Status.String())

	image := locale.DefaultImageLabel
	if plant.HasImage() {
		image = plant.ImageURI
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "#%s ", plant.ID)
	_, _ = fmt.Fprint(out, watering.Summary(plant, now))
	_, _ = fmt.Fprintf(out, "%s: %s\n", locale.ImageLabel, image)
	return nil
}
