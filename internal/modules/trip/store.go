// README: Trip store interface and the PostgreSQL implementation.
package trip

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mishwar/internal/types"
)

var (
	// ErrNotFound is returned when no trip exists for the given id.
	ErrNotFound = errors.New("trip not found")
	// ErrGuardFailed is returned by UpdateIf when the trip's current status
	// is outside the expected set. Losing a concurrent race surfaces as this
	// error, never as a silent overwrite.
	ErrGuardFailed = errors.New("trip status guard failed")
)

// Mutation is applied to a trip after the status guard has passed and before
// the record is written back. It must not be retained past the call.
type Mutation func(*Trip)

// Store is the only persistence surface the lifecycle engine uses. UpdateIf
// must be atomic with respect to the status read-check-write: two concurrent
// calls with disjoint outcomes see exactly one winner.
type Store interface {
	Create(ctx context.Context, t *Trip) error
	Get(ctx context.Context, id types.ID) (*Trip, error)
	UpdateIf(ctx context.Context, id types.ID, expected []Status, mut Mutation) (*Trip, error)
	ListByParty(ctx context.Context, userID types.ID, status *Status) ([]*Trip, error)
}

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

const tripColumns = `
	id, code, client_id, driver_id,
	origin_lat, origin_lng, destination_lat, destination_lng,
	origin_address, destination_address,
	vehicle_class, passenger_count, luggage_count, notes, ride_type,
	distance_km, price_amount, price_currency,
	payment_method, payment_status,
	scheduled_at, status, rating, review,
	created_at, updated_at, started_at, completed_at`

func (s *PGStore) Create(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (`+tripColumns+`
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18,
			$19, $20,
			$21, $22, $23, $24,
			$25, $26, $27, $28
		)`,
		string(t.ID), t.Code, string(t.ClientID), idPtr(t.DriverID),
		t.Origin.Lat, t.Origin.Lng, t.Destination.Lat, t.Destination.Lng,
		t.OriginAddress, t.DestinationAddress,
		t.VehicleClass, t.PassengerCount, t.LuggageCount, t.Notes, t.RideType,
		t.DistanceKm, t.Price.Amount, t.Price.Currency,
		t.Payment.Method, string(t.Payment.Status),
		t.ScheduledAt, string(t.Status), t.Rating, t.Review,
		t.CreatedAt, t.UpdatedAt, t.StartedAt, t.CompletedAt,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, string(id))
	return scanTrip(row)
}

// UpdateIf locks the row, re-checks the status against the expected set, and
// writes the mutated record inside one transaction. The lock makes the
// read-check-write atomic, so concurrent transitions on the same trip resolve
// to exactly one winner; losers get ErrGuardFailed.
func (s *PGStore) UpdateIf(ctx context.Context, id types.ID, expected []Status, mut Mutation) (*Trip, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1 FOR UPDATE`, string(id))
	t, err := scanTrip(row)
	if err != nil {
		return nil, err
	}
	if !statusIn(t.Status, expected) {
		return nil, ErrGuardFailed
	}

	mut(t)
	t.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx, `
		UPDATE trips SET
			driver_id = $2,
			status = $3,
			payment_status = $4,
			rating = $5,
			review = $6,
			updated_at = $7,
			started_at = $8,
			completed_at = $9
		WHERE id = $1`,
		string(id),
		idPtr(t.DriverID),
		string(t.Status),
		string(t.Payment.Status),
		t.Rating,
		t.Review,
		t.UpdatedAt,
		t.StartedAt,
		t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PGStore) ListByParty(ctx context.Context, userID types.ID, status *Status) ([]*Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE (client_id = $1 OR driver_id = $1)`
	args := []any{string(userID)}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var t Trip
	var driverID *string
	var status, paymentStatus string

	err := row.Scan(
		&t.ID, &t.Code, &t.ClientID, &driverID,
		&t.Origin.Lat, &t.Origin.Lng, &t.Destination.Lat, &t.Destination.Lng,
		&t.OriginAddress, &t.DestinationAddress,
		&t.VehicleClass, &t.PassengerCount, &t.LuggageCount, &t.Notes, &t.RideType,
		&t.DistanceKm, &t.Price.Amount, &t.Price.Currency,
		&t.Payment.Method, &paymentStatus,
		&t.ScheduledAt, &status, &t.Rating, &t.Review,
		&t.CreatedAt, &t.UpdatedAt, &t.StartedAt, &t.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if driverID != nil {
		d := types.ID(*driverID)
		t.DriverID = &d
	}
	t.Status = Status(status)
	t.Payment.Status = PaymentStatus(paymentStatus)
	return &t, nil
}

func statusIn(s Status, set []Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
