// Package cli wires the permission manager of a profile for command-line use.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/application/usecase"
	"github.com/bnema/webperm/internal/cli/styles"
	"github.com/bnema/webperm/internal/domain/build"
	"github.com/bnema/webperm/internal/infrastructure/config"
	"github.com/bnema/webperm/internal/infrastructure/metrics"
	"github.com/bnema/webperm/internal/infrastructure/persistence/memory"
	"github.com/bnema/webperm/internal/infrastructure/persistence/prefstore"
	"github.com/bnema/webperm/internal/infrastructure/settings"
	"github.com/bnema/webperm/internal/logging"
)

// Options selects the configuration an App is built from.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
}

// App holds CLI dependencies.
type App struct {
	Config      *config.Config
	ConfigFile  string
	Theme       *styles.Theme
	BuildInfo   build.Info
	Permissions *usecase.PermissionManager

	store   *prefstore.Store
	metrics *metrics.Recorder

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and opens the profile's permission store.
func NewApp(opts Options) (*App, error) {
	// Until the config is read, the environment decides how chatty we are.
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())

	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(ctx); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx = logging.WithContext(context.Background(), logger)
	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("profile", cfg.Profile.Name).
		Str("policy", string(cfg.EffectivePolicy())).
		Msg("configuration loaded")

	store := OpenPermissionStore(ctx, cfg)

	var recorder *metrics.Recorder
	var observer port.PermissionMetrics
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder(cfg.Metrics.Namespace)
		observer = recorder
	}

	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: store,
		// The CLI never owns a browsing context: nothing to sweep.
		Transient: memory.NewTransientStore(nil),
		Settings:  settings.NewProviderFromSource(mgr),
		Metrics:   observer,
	}, cfg.EffectivePolicy())

	return &App{
		Config:      cfg,
		ConfigFile:  mgr.GetConfigFile(),
		Theme:       styles.NewTheme(),
		Permissions: manager,
		store:       store,
		metrics:     recorder,
		ctx:         ctx,
	}, nil
}

func newConfigManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

// Persistent reports whether decisions made through the app reach the disk.
func (a *App) Persistent() bool {
	return a.store.IsPersistent()
}

// Close flushes pending decisions and releases the store.
func (a *App) Close() error {
	var errs []error
	if err := a.Permissions.Close(a.ctx); err != nil {
		errs = append(errs, fmt.Errorf("commit permissions: %w", err))
	}
	if err := a.store.Close(a.ctx); err != nil {
		errs = append(errs, fmt.Errorf("close permission store: %w", err))
	}
	if a.metrics != nil && a.Config.Metrics.Textfile != "" {
		if err := a.metrics.WriteTextfile(a.Config.Metrics.Textfile); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
