package sqlite

import (
	"context"
	"fmt"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/infrastructure/persistence/prefstore"
	"github.com/bnema/webperm/internal/logging"
)

// DatabaseFileName is the name of the permission database inside the profile data directory.
const DatabaseFileName = "permissions.db"

// PermissionBackend stores permission snapshots in the permissions table.
type PermissionBackend struct {
	provider port.DatabaseProvider
}

var _ prefstore.Backend = (*PermissionBackend)(nil)

// NewPermissionBackend creates a backend on top of provider.
func NewPermissionBackend(provider port.DatabaseProvider) *PermissionBackend {
	return &PermissionBackend{provider: provider}
}

// Load reads every stored decision.
func (b *PermissionBackend) Load(ctx context.Context) (prefstore.Snapshot, error) {
	db, err := b.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT permission_type, origin, granted FROM permissions`)
	if err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snapshot := make(prefstore.Snapshot)
	for rows.Next() {
		var (
			permType string
			origin   string
			granted  bool
		)
		if err := rows.Scan(&permType, &origin, &granted); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		entries, ok := snapshot[permType]
		if !ok {
			entries = make(map[string]bool)
			snapshot[permType] = entries
		}
		entries[origin] = granted
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate permissions: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("namespaces", len(snapshot)).Msg("permissions loaded from database")
	return snapshot, nil
}

// Save replaces the table content with snapshot in one transaction.
// Rows whose value did not change keep their updated_at.
func (b *PermissionBackend) Save(ctx context.Context, snapshot prefstore.Snapshot) error {
	db, err := b.provider.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `CREATE TEMP TABLE IF NOT EXISTS snapshot_keys (
		permission_type TEXT NOT NULL,
		origin TEXT NOT NULL,
		PRIMARY KEY (permission_type, origin)
	)`); err != nil {
		return fmt.Errorf("create snapshot table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_keys`); err != nil {
		return fmt.Errorf("clear snapshot table: %w", err)
	}

	upsert, err := tx.PrepareContext(ctx, `INSERT INTO permissions (permission_type, origin, granted)
		VALUES (?, ?, ?)
		ON CONFLICT (permission_type, origin) DO UPDATE
		SET granted = excluded.granted, updated_at = CURRENT_TIMESTAMP
		WHERE permissions.granted != excluded.granted`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer func() { _ = upsert.Close() }()

	mark, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_keys (permission_type, origin) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare key insert: %w", err)
	}
	defer func() { _ = mark.Close() }()

	for permType, entries := range snapshot {
		for origin, granted := range entries {
			if _, err := upsert.ExecContext(ctx, permType, origin, granted); err != nil {
				return fmt.Errorf("store %s for %s: %w", permType, origin, err)
			}
			if _, err := mark.ExecContext(ctx, permType, origin); err != nil {
				return fmt.Errorf("mark %s for %s: %w", permType, origin, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM permissions
		WHERE NOT EXISTS (
			SELECT 1 FROM snapshot_keys k
			WHERE k.permission_type = permissions.permission_type AND k.origin = permissions.origin
		)`); err != nil {
		return fmt.Errorf("delete reset permissions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit permissions: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (b *PermissionBackend) Close() error {
	return b.provider.Close()
}
