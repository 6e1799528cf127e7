// Package prefstore implements the profile-scoped persistent permission store.
// Decisions are kept in memory, one namespace per permission type, and written
// to an optional backend after a short delay.
package prefstore

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/domain/repository"
	"github.com/bnema/webperm/internal/logging"
)

// DefaultFlushDelay is how long writes are batched before reaching the backend.
const DefaultFlushDelay = 500 * time.Millisecond

// ErrBackendUnavailable is returned when the backing storage cannot be opened or read.
var ErrBackendUnavailable = errors.New("permission backend unavailable")

// Snapshot is the full content of the store: namespace -> origin -> granted.
type Snapshot map[string]map[string]bool

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for ns, entries := range s {
		out[ns] = maps.Clone(entries)
	}
	return out
}

// Backend persists snapshots.
type Backend interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
	Close() error
}

// Options configures a Store.
type Options struct {
	FlushDelay time.Duration
}

// Store is the persistent permission store of a profile.
type Store struct {
	mu         sync.Mutex
	data       Snapshot
	backend    Backend
	flushDelay time.Duration
	dirty      bool
	timer      *time.Timer
	flights    singleflight.Group

	// ctx carries the logger for background flushes.
	ctx context.Context
}

var _ repository.PermissionStore = (*Store)(nil)

// NewMemory creates a store that is never written anywhere.
func NewMemory() *Store {
	return &Store{
		data: make(Snapshot),
		ctx:  context.Background(),
	}
}

// Open loads the store from backend.
func Open(ctx context.Context, backend Backend, opts Options) (*Store, error) {
	snapshot, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if snapshot == nil {
		snapshot = make(Snapshot)
	}
	delay := opts.FlushDelay
	if delay <= 0 {
		delay = DefaultFlushDelay
	}

	s := &Store{
		data:       sanitize(snapshot),
		backend:    backend,
		flushDelay: delay,
		ctx:        context.WithoutCancel(ctx),
	}

	logging.FromContext(ctx).Debug().
		Str("component", "prefstore").
		Int("namespaces", len(s.data)).
		Msg("permission store loaded")
	return s, nil
}

// OpenWithFallback behaves like Open but returns an in-memory store when the backend
// cannot be read. The profile keeps working; decisions are lost on exit.
func OpenWithFallback(ctx context.Context, backend Backend, opts Options) *Store {
	s, err := Open(ctx, backend, opts)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("component", "prefstore").
			Msg("falling back to in-memory permission store")
		if closeErr := backend.Close(); closeErr != nil {
			logging.FromContext(ctx).Debug().Err(closeErr).Msg("failed to close permission backend")
		}
		return NewMemory()
	}
	return s
}

// sanitize drops namespaces that do not belong to a stored permission type.
func sanitize(snapshot Snapshot) Snapshot {
	out := make(Snapshot, len(snapshot))
	for _, t := range entity.StoredPermissionTypes() {
		key := entity.StorageKey(t)
		if entries, ok := snapshot[key]; ok && len(entries) > 0 {
			out[key] = maps.Clone(entries)
		}
	}
	return out
}

// Get returns the stored state for origin.
func (s *Store) Get(_ context.Context, permType entity.PermissionType, origin string) entity.PermissionState {
	key := entity.StorageKey(entity.StorageType(permType))
	if key == "" {
		return entity.PermissionAsk
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	granted, ok := s.data[key][origin]
	if !ok {
		return entity.PermissionAsk
	}
	return entity.StateFromBool(granted)
}

// Set stores a decision and schedules a flush.
func (s *Store) Set(_ context.Context, permType entity.PermissionType, origin string, granted bool) {
	key := entity.StorageKey(entity.StorageType(permType))
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.data[key]
	if !ok {
		entries = make(map[string]bool)
		s.data[key] = entries
	}
	if prev, exists := entries[origin]; exists && prev == granted {
		return
	}
	entries[origin] = granted
	s.scheduleFlushLocked()
}

// Reset removes the decision for origin and schedules a flush.
func (s *Store) Reset(_ context.Context, permType entity.PermissionType, origin string) {
	key := entity.StorageKey(entity.StorageType(permType))
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.data[key]
	if !ok {
		return
	}
	if _, exists := entries[origin]; !exists {
		return
	}
	delete(entries, origin)
	if len(entries) == 0 {
		delete(s.data, key)
	}
	s.scheduleFlushLocked()
}

// List returns the stored decisions of persistent types, sorted by type then origin.
func (s *Store) List(_ context.Context, permType entity.PermissionType, origin string) []entity.PermissionRecord {
	if permType == entity.PermissionTypeUnsupported {
		permType = ""
	}
	if permType != "" {
		permType = entity.StorageType(permType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var records []entity.PermissionRecord
	for _, t := range entity.StoredPermissionTypes() {
		if !entity.IsPersistent(t) || (permType != "" && t != permType) {
			continue
		}
		entries := s.data[entity.StorageKey(t)]
		for _, o := range slices.Sorted(maps.Keys(entries)) {
			if origin != "" && o != origin {
				continue
			}
			records = append(records, entity.PermissionRecord{
				Origin: o,
				Type:   t,
				State:  entity.StateFromBool(entries[o]),
			})
		}
	}
	return records
}

// Commit writes pending changes to the backend now.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	// A flush already in flight may have taken its snapshot before the latest writes.
	for s.isDirty() {
		if err := s.flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close commits pending changes and releases the backend.
func (s *Store) Close(ctx context.Context) error {
	err := s.Commit(ctx)
	if s.backend != nil {
		if closeErr := s.backend.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close permission backend: %w", closeErr)
		}
	}
	return err
}

// Snapshot returns a copy of the current content.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// IsPersistent reports whether the store writes to a backend.
func (s *Store) IsPersistent() bool {
	return s.backend != nil
}

func (s *Store) isDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty && s.backend != nil
}

func (s *Store) scheduleFlushLocked() {
	if s.backend == nil {
		return
	}
	s.dirty = true
	if s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(s.flushDelay, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()

		if err := s.flush(s.ctx); err != nil {
			logging.FromContext(s.ctx).Warn().
				Err(err).
				Str("component", "prefstore").
				Msg("failed to flush permissions")
		}
	})
}

// flush writes the current snapshot. Concurrent callers share one write.
func (s *Store) flush(ctx context.Context) error {
	_, err, _ := s.flights.Do("flush", func() (any, error) {
		s.mu.Lock()
		if !s.dirty {
			s.mu.Unlock()
			return nil, nil
		}
		snapshot := s.data.Clone()
		s.dirty = false
		s.mu.Unlock()

		if err := s.backend.Save(ctx, snapshot); err != nil {
			s.mu.Lock()
			s.dirty = true
			s.mu.Unlock()
			return nil, fmt.Errorf("save permissions: %w", err)
		}

		logging.FromContext(ctx).Debug().
			Str("component", "prefstore").
			Int("namespaces", len(snapshot)).
			Msg("permissions flushed")
		return nil, nil
	})
	return err
}
