package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/infrastructure/config"
	"github.com/bnema/webperm/internal/infrastructure/persistence/prefstore"
	"github.com/bnema/webperm/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webperm/internal/logging"
)

const dataDirPerm = 0o755

// OpenPermissionStore returns the persistent store matching the profile's policy
// and backend. A backend that cannot be opened degrades to an in-memory store.
func OpenPermissionStore(ctx context.Context, cfg *config.Config) *prefstore.Store {
	log := logging.FromContext(logging.WithComponent(ctx, "cli"))

	if cfg.EffectivePolicy() != entity.PolicyStoreOnDisk {
		log.Debug().Str("policy", string(cfg.EffectivePolicy())).Msg("profile keeps permissions in memory")
		return prefstore.NewMemory()
	}

	if err := os.MkdirAll(cfg.Profile.DataPath, dataDirPerm); err != nil {
		log.Warn().Err(err).Str("path", cfg.Profile.DataPath).Msg("cannot create profile directory, using in-memory permissions")
		return prefstore.NewMemory()
	}

	var backend prefstore.Backend
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite:
		db := sqlite.NewLazyDB(filepath.Join(cfg.Profile.DataPath, sqlite.DatabaseFileName))
		log.Debug().Str("path", db.Path()).Msg("using sqlite permission backend")
		backend = sqlite.NewPermissionBackend(db)
	default:
		backend = prefstore.NewJSONBackend(cfg.Profile.DataPath)
	}

	return prefstore.OpenWithFallback(ctx, backend, prefstore.Options{
		FlushDelay: cfg.Storage.FlushDelayDuration(),
	})
}
