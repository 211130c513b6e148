// README: Ledger tests; the Redis-backed cases require MISHWAR_TEST_REDIS.
package driver

import (
	"context"
	"os"
	"sort"
	"testing"

	goredis "github.com/redis/go-redis/v9"
)

func TestMemLedgerIdempotentAssign(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemLedger()

	for i := 0; i < 3; i++ {
		if err := ledger.Assign(ctx, "driver-1", "trip-a"); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}
	if err := ledger.Assign(ctx, "driver-1", "trip-b"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	ids, err := ledger.TripsForDriver(ctx, "driver-1")
	if err != nil {
		t.Fatalf("trips for driver: %v", err)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) != 2 || ids[0] != "trip-a" || ids[1] != "trip-b" {
		t.Fatalf("ledger entries = %v, want [trip-a trip-b]", ids)
	}

	other, err := ledger.TripsForDriver(ctx, "driver-2")
	if err != nil {
		t.Fatalf("trips for driver: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("entries leaked across drivers: %v", other)
	}
}

func TestRedisLedger(t *testing.T) {
	addr := os.Getenv("MISHWAR_TEST_REDIS")
	if addr == "" {
		t.Skip("MISHWAR_TEST_REDIS not set; skipping Redis-backed ledger tests")
	}

	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	if err := client.Del(ctx, ledgerKey("driver-1")).Err(); err != nil {
		t.Fatalf("cleanup key: %v", err)
	}

	ledger := NewRedisLedger(client)
	for i := 0; i < 3; i++ {
		if err := ledger.Assign(ctx, "driver-1", "trip-a"); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}
	if err := ledger.Assign(ctx, "driver-1", "trip-b"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	ids, err := ledger.TripsForDriver(ctx, "driver-1")
	if err != nil {
		t.Fatalf("trips for driver: %v", err)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) != 2 || ids[0] != "trip-a" || ids[1] != "trip-b" {
		t.Fatalf("ledger entries = %v, want [trip-a trip-b]", ids)
	}
}

func TestMemDirectory(t *testing.T) {
	ctx := context.Background()
	dir := NewMemDirectory()
	dir.Put(&Driver{ID: "driver-1", Name: "Hassan", AcceptsCash: true, Active: true})

	drv, err := dir.Get(ctx, "driver-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if drv.Name != "Hassan" || !drv.AcceptsCash {
		t.Fatalf("unexpected driver: %+v", drv)
	}

	if _, err := dir.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("get missing = %v, want ErrNotFound", err)
	}

	// The directory hands out copies; mutating one must not affect the stored record.
	drv.Name = "Changed"
	again, _ := dir.Get(ctx, "driver-1")
	if again.Name != "Hassan" {
		t.Fatalf("stored driver mutated through a returned copy: %+v", again)
	}
}
