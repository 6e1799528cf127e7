// Package memory provides in-memory permission storage scoped to browsing contexts.
package memory

import (
	"sync"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/domain/repository"
)

// DefaultSweepInterval is the number of writes between two sweeps of dead contexts.
const DefaultSweepInterval = 25

type transientEntry struct {
	origin   string
	permType entity.PermissionType
	granted  bool
}

// TransientStore keeps permission decisions per browsing context.
// Decisions recorded under one token are never visible to another.
type TransientStore struct {
	mu       sync.Mutex
	contexts port.BrowsingContextResolver
	entries  map[entity.ContextToken][]transientEntry

	sweepInterval int
	writes        int
	sweeping      sync.WaitGroup
}

var _ repository.TransientPermissionStore = (*TransientStore)(nil)

// NewTransientStore creates an empty transient store. contexts is used to find the
// entries of destroyed browsing contexts; a nil resolver disables sweeping.
func NewTransientStore(contexts port.BrowsingContextResolver) *TransientStore {
	return &TransientStore{
		contexts:      contexts,
		entries:       make(map[entity.ContextToken][]transientEntry),
		sweepInterval: DefaultSweepInterval,
	}
}

// Get returns the decision recorded for (origin, type) under token.
func (s *TransientStore) Get(permType entity.PermissionType, origin string, token entity.ContextToken) entity.PermissionState {
	if permType == entity.PermissionTypeUnsupported {
		return entity.PermissionDenied
	}
	if !token.IsValid() {
		return entity.PermissionAsk
	}
	permType = entity.StorageType(permType)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries[token] {
		if e.origin == origin && e.permType == permType {
			return entity.StateFromBool(e.granted)
		}
	}
	return entity.PermissionAsk
}

// Set records a decision under token, replacing any previous one for (origin, type).
// Every DefaultSweepInterval writes a sweep is started in the background.
func (s *TransientStore) Set(permType entity.PermissionType, origin string, granted bool, token entity.ContextToken) {
	if !token.IsValid() || permType == entity.PermissionTypeUnsupported {
		return
	}
	permType = entity.StorageType(permType)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[token]
	replaced := false
	for i := range list {
		if list[i].origin == origin && list[i].permType == permType {
			list[i].granted = granted
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries[token] = append(list, transientEntry{origin: origin, permType: permType, granted: granted})
	}

	s.writes++
	if s.writes >= s.sweepInterval {
		s.writes = 0
		s.sweeping.Add(1)
		go func() {
			defer s.sweeping.Done()
			s.Sweep()
		}()
	}
}

// Reset removes the decision for (origin, type) under token.
func (s *TransientStore) Reset(permType entity.PermissionType, origin string, token entity.ContextToken) {
	if !token.IsValid() {
		return
	}
	permType = entity.StorageType(permType)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[token]
	for i := range list {
		if list[i].origin == origin && list[i].permType == permType {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.entries, token)
		return
	}
	s.entries[token] = list
}

// InvalidateOnCrossOriginNavigation drops the decisions held by token that were recorded
// for an origin other than newOrigin.
func (s *TransientStore) InvalidateOnCrossOriginNavigation(token entity.ContextToken, newOrigin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.entries[token]
	if !ok {
		return false
	}

	kept := list[:0]
	for _, e := range list {
		if e.origin == newOrigin {
			kept = append(kept, e)
		}
	}
	dropped := len(kept) != len(list)
	if len(kept) == 0 {
		delete(s.entries, token)
	} else {
		s.entries[token] = kept
	}
	return dropped
}

// Sweep drops the entries of tokens whose browsing context no longer exists.
func (s *TransientStore) Sweep() {
	if s.contexts == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for token := range s.entries {
		if !s.contexts.IsAlive(token) {
			delete(s.entries, token)
		}
	}
}

// Len returns the number of tokens holding at least one decision.
func (s *TransientStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Wait blocks until background sweeps have finished.
func (s *TransientStore) Wait() {
	s.sweeping.Wait()
}
