// README: In-memory notification sink used by tests and local wiring.
package notification

import (
	"context"
	"sort"
	"sync"

	"mishwar/internal/types"
)

type MemSink struct {
	mu    sync.Mutex
	items map[types.ID]*Notification
}

func NewMemSink() *MemSink {
	return &MemSink{items: make(map[types.ID]*Notification)}
}

func (s *MemSink) Create(_ context.Context, n *Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *n
	s.items[n.ID] = &cp
	return nil
}

func (s *MemSink) ListForUser(_ context.Context, userID types.ID) ([]*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Notification
	for _, n := range s.items {
		if n.RecipientID != userID {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemSink) MarkRead(_ context.Context, id types.ID) (*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	n.Read = true
	cp := *n
	return &cp, nil
}

func (s *MemSink) Delete(_ context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
