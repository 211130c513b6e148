// README: PostgreSQL store tests (run with -race); require MISHWAR_TEST_DSN.
package trip

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mishwar/internal/types"
)

func TestPGStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupPGStore(t)

	now := time.Now().UTC().Truncate(time.Microsecond)
	in := &Trip{
		ID:             "trip-roundtrip",
		Code:           "MW-TEST01",
		ClientID:       "client-1",
		Origin:         types.Point{Lat: 30.0, Lng: 31.0},
		Destination:    types.Point{Lat: 30.05, Lng: 31.05},
		VehicleClass:   "Economy",
		PassengerCount: 2,
		LuggageCount:   1,
		Notes:          "two suitcases",
		RideType:       RideTypeNormal,
		DistanceKm:     6.9,
		Price:          types.Money{Amount: 54.5, Currency: "EGP"},
		Payment:        PaymentInfo{Method: PaymentMethodCash, Status: PaymentPending},
		Status:         StatusRequested,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := store.Get(ctx, in.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Code != in.Code || out.ClientID != in.ClientID || out.Status != in.Status {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Price != in.Price || out.Payment != in.Payment {
		t.Fatalf("price/payment mismatch: %+v", out)
	}
	if out.PassengerCount != 2 || out.Notes != "two suitcases" {
		t.Fatalf("detail mismatch: %+v", out)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing = %v, want ErrNotFound", err)
	}
}

func TestPGStoreGuard(t *testing.T) {
	ctx := context.Background()
	store := setupPGStore(t)
	seedTrip(t, store, "trip-guard", StatusRequested)

	_, err := store.UpdateIf(ctx, "trip-guard", []Status{StatusOngoing}, func(tr *Trip) {
		tr.Status = StatusCompleted
	})
	if !errors.Is(err, ErrGuardFailed) {
		t.Fatalf("UpdateIf = %v, want ErrGuardFailed", err)
	}

	got, err := store.Get(ctx, "trip-guard")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusRequested {
		t.Fatalf("status changed despite guard failure: %s", got.Status)
	}
}

func TestPGStoreConcurrentUpdateIf(t *testing.T) {
	ctx := context.Background()
	store := setupPGStore(t)
	seedTrip(t, store, "trip-race", StatusRequested)

	const contenders = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			d := types.ID(fmt.Sprintf("d%d", i))
			_, errs[i] = store.UpdateIf(ctx, "trip-race", []Status{StatusRequested}, func(tr *Trip) {
				tr.Status = StatusAccepted
				tr.DriverID = &d
			})
		}(i)
	}
	close(start)
	wg.Wait()

	success := 0
	for i, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrGuardFailed):
		default:
			t.Errorf("contender %d: unexpected error %v", i, err)
		}
	}
	if success != 1 {
		t.Fatalf("successes = %d, want exactly 1", success)
	}

	got, err := store.Get(ctx, "trip-race")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusAccepted || got.DriverID == nil {
		t.Fatalf("final row: %+v", got)
	}
}

func seedTrip(t *testing.T, store *PGStore, id types.ID, status Status) {
	t.Helper()
	now := time.Now().UTC()
	err := store.Create(context.Background(), &Trip{
		ID:           id,
		Code:         GenerateCode(),
		ClientID:     "client-1",
		Origin:       types.Point{Lat: 30.0, Lng: 31.0},
		Destination:  types.Point{Lat: 30.05, Lng: 31.05},
		VehicleClass: "Economy",
		RideType:     RideTypeNormal,
		DistanceKm:   6.9,
		Price:        types.Money{Amount: 54.5, Currency: "EGP"},
		Payment:      PaymentInfo{Method: PaymentMethodCash, Status: PaymentPending},
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed trip %s: %v", id, err)
	}
}

func setupPGStore(t *testing.T) *PGStore {
	t.Helper()

	dsn := os.Getenv("MISHWAR_TEST_DSN")
	if dsn == "" {
		t.Skip("MISHWAR_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE trips, notifications, drivers"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewPGStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	path := filepath.Join(root, "migrations", "0001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cleaned := stripSQLComments(string(content))
	for _, stmt := range splitSQL(cleaned) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
