// README: Per-driver trip assignment ledger backed by Redis sets.
package driver

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mishwar/internal/types"
)

const ledgerKeyPrefix = "ledger:driver:%s:trips"

// Ledger is a denormalized index of trips bound to a driver. The trip
// record's driver field stays authoritative; the ledger exists for "my
// trips" reads and is rebuildable from trip records if lost.
type Ledger interface {
	// Assign appends a trip to the driver's set. Assigning the same trip
	// twice is a no-op, not a duplicate.
	Assign(ctx context.Context, driverID, tripID types.ID) error
	TripsForDriver(ctx context.Context, driverID types.ID) ([]types.ID, error)
}

type RedisLedger struct {
	redis *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{redis: client}
}

func (l *RedisLedger) Assign(ctx context.Context, driverID, tripID types.ID) error {
	// SADD is idempotent by construction.
	return l.redis.SAdd(ctx, ledgerKey(driverID), string(tripID)).Err()
}

func (l *RedisLedger) TripsForDriver(ctx context.Context, driverID types.ID) ([]types.ID, error) {
	members, err := l.redis.SMembers(ctx, ledgerKey(driverID)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]types.ID, len(members))
	for i, m := range members {
		ids[i] = types.ID(m)
	}
	return ids, nil
}

func ledgerKey(driverID types.ID) string {
	return fmt.Sprintf(ledgerKeyPrefix, string(driverID))
}
