package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a plant",
	Long: `Delete a plant and the image Zelenko copied for it. This cannot be undone.

Unknown ids are reported and otherwise ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("remove", err)
	}
	defer done()

	out := cmd.OutOrStdout()
	plant, err := a.RemovePlant(telemetry.SourceCLI, args[0])
	if errors.Is(err, app.ErrPlantNotFound) {
		_, _ = fmt.Fprintln(out, locale.PlantNotFound)
		return nil
	}
	if err != nil {
		return trackCLIError("remove", err)
	}

	_, _ = fmt.Fprintf(out, "🗑  %s: %s\n", locale.Delete, plant.Name)
	return nil
}
