// Zelenko - plant watering reminder
//
// A terminal companion that remembers when each houseplant was last watered
// and tells you, in Serbian, which ones are thirsty.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/asteroid-belt/zelenko/internal/cli"
	"github.com/asteroid-belt/zelenko/internal/config"
	"github.com/asteroid-belt/zelenko/internal/db"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and open database for persistent tracking ID
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zelenko:", err)
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		fmt.Fprintln(os.Stderr, "zelenko:", err)
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	telemetryClient := telemetry.New(cfg.Telemetry.Enabled, database)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
