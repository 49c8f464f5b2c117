package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

var (
	addEvery string
	addImage string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a plant",
	Long: `Add a plant to the list.

The name may be quoted or given as several words. --every sets how many
days pass between waterings. --image copies a picture into Zelenko's data
directory; without it the plant uses the default image.

New plants start as never watered, so they show as due right away.`,
	Example: `  zelenko add "Kaktus Kasper" --every 14
  zelenko add Monstera --every 6 --image ~/Pictures/monstera.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addEvery, "every", "e", "", "Days between waterings")
	addCmd.Flags().StringVar(&addImage, "image", "", "Image file to attach")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("add", err)
	}
	defer done()

	plant, err := a.AddPlant(telemetry.SourceCLI, app.NewPlant{
		Name:  strings.Join(args, " "),
		Days:  addEvery,
		Image: addImage,
	})
	if err != nil {
		return trackCLIError("add", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "🌱 %s #%s: %s\n", locale.AddPlant, plant.ID, plant.Name)
	_, _ = fmt.Fprintf(out, "   %s\n", locale.WateringEvery(plant.WateringFrequencyDays))
	return nil
}
