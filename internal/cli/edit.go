package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

var (
	editName       string
	editEvery      string
	editImage      string
	editClearImage bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a plant's name, interval or image",
	Long: `Change a plant. Only the flags you pass are applied; everything else,
including the last watering, is kept.`,
	Example: `  zelenko edit 3 --every 10
  zelenko edit 3 --name "Fikus Benjamin" --image ~/Pictures/fikus.png
  zelenko edit 3 --clear-image`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVarP(&editEvery, "every", "e", "", "Days between waterings")
	editCmd.Flags().StringVar(&editImage, "image", "", "Image file to attach")
	editCmd.Flags().BoolVar(&editClearImage, "clear-image", false, "Go back to the default image")
	editCmd.MarkFlagsMutuallyExclusive("image", "clear-image")
}

func runEdit(cmd *cobra.Command, args []string) error {
	edit := app.PlantEdit{Image: editImage, ClearImage: editClearImage}
	if cmd.Flags().Changed("name") {
		edit.Name = &editName
	}
	if cmd.Flags().Changed("every") {
		edit.Days = &editEvery
	}

	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("edit", err)
	}
	defer done()

	plant, err := a.UpdatePlant(telemetry.SourceCLI, args[0], edit)
	if err != nil {
		return trackCLIError("edit", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "✏️  %s #%s: %s\n", locale.SaveChanges, plant.ID, plant.Name)
	_, _ = fmt.Fprintf(out, "   %s\n", locale.WateringEvery(plant.WateringFrequencyDays))
	return nil
}
