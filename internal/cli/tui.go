package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/internal/config"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/log"
	"github.com/asteroid-belt/zelenko/internal/tui"
	"github.com/asteroid-belt/zelenko/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	started := time.Now()

	a, done, err := openApp(cmd.Context())
	if err != nil {
		return trackCLIError("tui", err)
	}
	defer done()

	printBanner()

	paths := config.GetPaths(a.Config)
	log.Printf("\n\U0001F4C1 Base directory: %s\n", a.Config.BaseDir)
	switch a.Backend {
	case config.BackendDB:
		log.Printf("\U0001F4BE Storage: %s\n", paths.Database)
	case config.BackendFile:
		log.Printf("\U0001F4BE Storage: %s\n", paths.Snapshots)
	default:
		log.Println("\U0001F4BE Storage: memory (changes are not saved)")
	}
	log.Printf("\U0001F4C1 Log file: %s\n", paths.Log)

	if id := telemetryClient.GetTrackingID(); id != "" {
		log.Println("\n\U0001F4CA Telemetry: ON (set ZELENKO_TELEMETRY_TRACKING_ENABLED=false to disable)")
		log.Printf("   Anon ID: %s\n", id)
	} else {
		log.Println("\n\U0001F4CA Telemetry: OFF")
	}

	telemetryClient.TrackAppStarted("tui", a.Plants.Len())
	err = tui.Run(a)
	telemetryClient.TrackAppExited("tui", time.Since(started).Milliseconds(), 0)

	return err
}

func printBanner() {
	banner := `
   ╔══════════════════════════════════════╗
   ║   🌿  Z E L E N K O  🌿              ║
   ╠══════════════════════════════════════╣
   ║   %-34s ║
   ╚══════════════════════════════════════╝
`
	fmt.Printf(banner, "podsetnik za zalivanje")
	fmt.Printf("   %s\n   Version: %s\n", locale.Tagline, version.Display())
}
