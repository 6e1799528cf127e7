package prefstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/webperm/internal/logging"
)

// FileName is the name of the permission file inside the profile data directory.
const FileName = "permissions.json"

const fileVersion = 1

type permissionFile struct {
	Version     int      `json:"version"`
	Permissions Snapshot `json:"permissions"`
}

// JSONBackend stores snapshots in a JSON file, replaced atomically on each save.
type JSONBackend struct {
	path string
}

var _ Backend = (*JSONBackend)(nil)

// NewJSONBackend creates a backend writing to dataPath/permissions.json.
func NewJSONBackend(dataPath string) *JSONBackend {
	return &JSONBackend{path: filepath.Join(dataPath, FileName)}
}

// Path returns the file path.
func (b *JSONBackend) Path() string {
	return b.path
}

// Load reads the file. A missing file is an empty snapshot.
func (b *JSONBackend) Load(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(Snapshot), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}
	if len(data) == 0 {
		return make(Snapshot), nil
	}

	var file permissionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", b.path, err)
	}
	if file.Version > fileVersion {
		return nil, fmt.Errorf("%s: unsupported version %d", b.path, file.Version)
	}
	if file.Permissions == nil {
		file.Permissions = make(Snapshot)
	}
	return file.Permissions, nil
}

// Save writes snapshot to a temporary file and renames it over the previous one.
func (b *JSONBackend) Save(ctx context.Context, snapshot Snapshot) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(permissionFile{Version: fileVersion, Permissions: snapshot}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode permissions: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".permissions-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	log := logging.FromContext(ctx)

	cleanup := func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			log.Warn().Err(removeErr).Str("path", tmpPath).Msg("failed to remove temp permission file")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, b.path); err != nil {
		cleanup()
		return fmt.Errorf("rename permission file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open while loading or saving.
func (b *JSONBackend) Close() error {
	return nil
}
