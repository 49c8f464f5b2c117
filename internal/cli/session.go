package cli

import (
	"context"
	"fmt"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/config"
	"github.com/asteroid-belt/zelenko/internal/log"
)

// openApp loads configuration and opens the plant stores for one command.
// The returned close func flushes pending writes; call it before exiting.
func openApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := log.Init(cfg.BaseDir); err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}

	opts := app.Options{Config: cfg, Telemetry: telemetryClient}
	if ephemeral {
		opts.Backend = config.BackendMemory
	}

	a, err := app.Open(ctx, opts)
	if err != nil {
		_ = log.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := a.Close(context.WithoutCancel(ctx)); err != nil {
			log.Errorf("save changes: %v", err)
		}
		_ = log.Close()
	}
	return a, closeFn, nil
}
