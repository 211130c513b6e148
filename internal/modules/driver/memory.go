// README: In-memory directory and ledger used by tests and local wiring.
package driver

import (
	"context"
	"sync"

	"mishwar/internal/types"
)

type MemDirectory struct {
	mu      sync.Mutex
	drivers map[types.ID]*Driver
}

func NewMemDirectory() *MemDirectory {
	return &MemDirectory{drivers: make(map[types.ID]*Driver)}
}

func (d *MemDirectory) Put(drv *Driver) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := *drv
	d.drivers[drv.ID] = &cp
}

func (d *MemDirectory) Get(_ context.Context, id types.ID) (*Driver, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	drv, ok := d.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *drv
	return &cp, nil
}

type MemLedger struct {
	mu      sync.Mutex
	entries map[types.ID]map[types.ID]struct{}
}

func NewMemLedger() *MemLedger {
	return &MemLedger{entries: make(map[types.ID]map[types.ID]struct{})}
}

func (l *MemLedger) Assign(_ context.Context, driverID, tripID types.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.entries[driverID]
	if !ok {
		set = make(map[types.ID]struct{})
		l.entries[driverID] = set
	}
	set[tripID] = struct{}{}
	return nil
}

func (l *MemLedger) TripsForDriver(_ context.Context, driverID types.ID) ([]types.ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]types.ID, 0, len(l.entries[driverID]))
	for id := range l.entries[driverID] {
		ids = append(ids, id)
	}
	return ids, nil
}
