package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
	"github.com/asteroid-belt/zelenko/internal/watering"
)

var waterCmd = &cobra.Command{
	Use:   "water <id>",
	Short: "Record a watering now",
	Long: `Record that a plant was watered just now.

Unknown ids are reported and otherwise ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runWater,
}

func runWater(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("water", err)
	}
	defer done()

	out := cmd.OutOrStdout()
	plant, err := a.WaterPlant(telemetry.SourceCLI, args[0])
	if errors.Is(err, app.ErrPlantNotFound) {
		_, _ = fmt.Fprintln(out, locale.PlantNotFound)
		return nil
	}
	if err != nil {
		return trackCLIError("water", err)
	}

	_, _ = fmt.Fprintf(out, "💧 %s\n", plant.Name)
	_, _ = fmt.Fprintf(out, "   %s: %s\n", locale.LastWateredLabel, watering.LastWateredText(plant, a.Now().Location()))
	return nil
}
