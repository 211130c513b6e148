// README: In-memory trip store with the same guard semantics as PGStore.
package trip

import (
	"context"
	"sort"
	"sync"
	"time"

	"mishwar/internal/types"
)

// MemStore keeps trips in a mutex-guarded map. Tests and the local dev
// wiring use it in place of PGStore; UpdateIf holds the lock across the
// read-check-write so the compare-and-set contract matches the SQL path.
type MemStore struct {
	mu    sync.Mutex
	trips map[types.ID]*Trip
}

func NewMemStore() *MemStore {
	return &MemStore{trips: make(map[types.ID]*Trip)}
}

func (s *MemStore) Create(_ context.Context, t *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.trips[t.ID] = &cp
	return nil
}

func (s *MemStore) Get(_ context.Context, id types.ID) (*Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *MemStore) UpdateIf(_ context.Context, id types.ID, expected []Status, mut Mutation) (*Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !statusIn(t.Status, expected) {
		return nil, ErrGuardFailed
	}
	cp := *t
	mut(&cp)
	cp.UpdatedAt = time.Now().UTC()
	s.trips[id] = &cp
	out := cp
	return &out, nil
}

func (s *MemStore) ListByParty(_ context.Context, userID types.ID, status *Status) ([]*Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var trips []*Trip
	for _, t := range s.trips {
		if t.ClientID != userID && (t.DriverID == nil || *t.DriverID != userID) {
			continue
		}
		if status != nil && t.Status != *status {
			continue
		}
		cp := *t
		trips = append(trips, &cp)
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}
