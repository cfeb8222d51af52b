package memory

import (
	"context"
	"sync"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory snapshot store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Snapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	copied := *snap
	copied.States = copyStates(snap.States)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[snap.Name] = &copied
	return nil
}

// Load retrieves a snapshot by name.
func (s *Store) Load(ctx context.Context, name string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[name]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	// Copy on read so the caller can't mutate stored data by pointer.
	ret := *snap
	ret.States = copyStates(snap.States)
	return &ret, nil
}

// Delete removes a snapshot.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[name]; !ok {
		return domain.ErrSnapshotNotFound
	}
	delete(s.data, name)
	return nil
}

// List returns stored snapshot names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}
