// Package app wires configuration, storage and the plant stores into one
// handle shared by the CLI and the TUI.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asteroid-belt/zelenko/internal/clock"
	"github.com/asteroid-belt/zelenko/internal/config"
	"github.com/asteroid-belt/zelenko/internal/db"
	"github.com/asteroid-belt/zelenko/internal/images"
	"github.com/asteroid-belt/zelenko/internal/kv"
	"github.com/asteroid-belt/zelenko/internal/log"
	"github.com/asteroid-belt/zelenko/internal/store"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

// Options configures Open. Only Config is required.
type Options struct {
	Config *config.Config

	// DB is used as the snapshot store for the "db" backend.
	// Open creates one from the config when it is nil.
	DB *db.DB

	// Backend overrides Config.Storage.Backend when set.
	Backend string

	Clock     clock.Clock
	Telemetry telemetry.Client

	// Logf receives background errors. Defaults to the file logger.
	Logf func(format string, args ...interface{})
}

// App is the running application state.
type App struct {
	Config     *config.Config
	Plants     *store.Registry
	Onboarding *store.OnboardingStore
	Images     *images.Store
	Clock      clock.Clock
	Telemetry  telemetry.Client
	Backend    string

	kv        kv.Store
	db        *db.DB
	ownsDB    bool
	persister *store.Persister
	logf      func(format string, args ...interface{})
}

// Open loads both stores from the selected backend and subscribes a
// persister to them. Unreadable snapshots are logged and replaced by the
// initial state; only backend setup failures are returned.
func Open(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("open app: config is required")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}
	clk = clock.In(clk, loc)

	logf := opts.Logf
	if logf == nil {
		logf = log.Filef
	}

	tc := opts.Telemetry
	if tc == nil {
		tc = telemetry.Noop()
	}

	a := &App{
		Config:    cfg,
		Images:    images.NewStore(cfg.BaseDir, clk),
		Clock:     clk,
		Telemetry: tc,
		Backend:   opts.Backend,
		db:        opts.DB,
		logf:      logf,
	}
	if a.Backend == "" {
		a.Backend = cfg.Storage.Backend
	}

	if err := a.openBackend(); err != nil {
		return nil, err
	}

	plants, err := store.LoadPlants(ctx, a.kv)
	if err != nil {
		logf("load plants: %v", err)
	}
	user, err := store.LoadUser(ctx, a.kv)
	if err != nil {
		logf("load onboarding: %v", err)
	}

	a.Plants = store.NewRegistry(plants, clk)
	a.Onboarding = store.NewOnboardingStore(user)

	a.persister = store.NewPersister(a.kv, store.WithErrorHandler(func(key string, err error) {
		logf("persist %s: %v", key, err)
	}))
	store.PersistPlants(a.Plants, a.persister)
	store.PersistOnboarding(a.Onboarding, a.persister)

	if a.db != nil {
		if stats, err := a.db.GetStats(); err == nil {
			logf("storage %s: %d entries, %d bytes", a.Backend, stats.Entries, stats.ValueBytes)
		}
	}

	return a, nil
}

func (a *App) openBackend() error {
	paths := config.GetPaths(a.Config)

	switch a.Backend {
	case config.BackendDB:
		if a.db == nil {
			dbCfg := db.DefaultConfig(paths.Database)
			dbCfg.Debug = a.Config.Storage.Debug
			database, err := db.New(dbCfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			a.db = database
			a.ownsDB = true
		}
		a.kv = a.db
	case config.BackendFile:
		a.kv = kv.NewFileStore(paths.Snapshots)
	case config.BackendMemory:
		a.kv = kv.NewMemoryStore()
	default:
		return fmt.Errorf("unknown storage backend %q", a.Backend)
	}
	return nil
}

// Now returns the current time in the configured zone.
func (a *App) Now() time.Time {
	return a.Clock.Now()
}

// Store returns the snapshot backend.
func (a *App) Store() kv.Store {
	return a.kv
}

// Flush waits for queued snapshots to be written.
func (a *App) Flush(ctx context.Context) error {
	return a.persister.Flush(ctx)
}

// Close writes pending snapshots and releases the backend.
func (a *App) Close(ctx context.Context) error {
	err := a.persister.Close(ctx)
	if a.ownsDB {
		if cerr := a.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
