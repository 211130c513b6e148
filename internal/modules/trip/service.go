// README: Trip lifecycle engine: validates transitions, applies them through
// the store's compare-and-set path, then fires post-commit side effects.
package trip

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mishwar/internal/geo"
	"mishwar/internal/modules/driver"
	"mishwar/internal/observability"
	"mishwar/internal/types"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotAvailable    = errors.New("trip not available")
	ErrAlreadyTerminal = errors.New("trip already in a terminal state")
	ErrPaymentPolicy   = errors.New("driver does not accept cash payments")
)

// Pricing quotes a fare for a vehicle class over a distance.
type Pricing interface {
	Quote(class string, distanceKm float64) (types.Money, error)
}

// Notifier records a user-directed message. Implementations must swallow
// their own failures; the engine never checks an error here.
type Notifier interface {
	Push(ctx context.Context, recipientID types.ID, recipientKind, title, message, category string)
}

// Publisher emits a trip status-change event to an external stream.
type Publisher interface {
	TripStatusChanged(ctx context.Context, t *Trip, from Status)
}

// Geocoder resolves a coordinate to a human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, p types.Point) (string, error)
}

type Deps struct {
	Store   Store
	Pricing Pricing
	Drivers driver.Directory
	Ledger  driver.Ledger
	// Notifier, Publisher, and Geocoder are optional; nil disables them.
	Notifier  Notifier
	Publisher Publisher
	Geocoder  Geocoder
	Log       *logrus.Logger
}

type Service struct {
	store     Store
	pricing   Pricing
	drivers   driver.Directory
	ledger    driver.Ledger
	notifier  Notifier
	publisher Publisher
	geocoder  Geocoder
	log       *logrus.Logger
}

func NewService(deps Deps) *Service {
	log := deps.Log
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		store:     deps.Store,
		pricing:   deps.Pricing,
		drivers:   deps.Drivers,
		ledger:    deps.Ledger,
		notifier:  deps.Notifier,
		publisher: deps.Publisher,
		geocoder:  deps.Geocoder,
		log:       log,
	}
}

type CreateCommand struct {
	ClientID       types.ID
	VehicleClass   string
	Origin         types.Point
	Destination    types.Point
	ScheduledAt    *time.Time
	PaymentMethod  string
	PassengerCount int
	LuggageCount   int
	Notes          string
}

type AcceptCommand struct {
	TripID   types.ID
	DriverID types.ID
}

type StartCommand struct {
	TripID types.ID
	// DriverID, when set, must match the assigned driver.
	DriverID types.ID
}

type RejectCommand struct{ TripID types.ID }
type ArriveCommand struct{ TripID types.ID }
type CompleteCommand struct{ TripID types.ID }
type CancelCommand struct{ TripID types.ID }

type RateCommand struct {
	TripID types.ID
	Rating int
	Review string
}

// Create computes distance and fare once, synchronously, and persists the
// trip in its initial status. The only side effect is one notification to
// the client.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Trip, error) {
	if cmd.ClientID == "" {
		return nil, fmt.Errorf("%w: missing client id", ErrValidation)
	}
	if !cmd.Origin.Valid() || !cmd.Destination.Valid() {
		return nil, fmt.Errorf("%w: invalid location data", ErrValidation)
	}

	distanceKm := geo.DistanceKm(cmd.Origin, cmd.Destination)
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return nil, fmt.Errorf("%w: invalid distance calculation", ErrValidation)
	}

	price, err := s.pricing.Quote(cmd.VehicleClass, distanceKm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now().UTC()
	status := StatusRequested
	rideType := RideTypeNormal
	var scheduledAt *time.Time
	if cmd.ScheduledAt != nil && cmd.ScheduledAt.After(now) {
		status = StatusScheduled
		rideType = RideTypeScheduled
		at := cmd.ScheduledAt.UTC()
		scheduledAt = &at
	}

	method := cmd.PaymentMethod
	if method == "" {
		method = PaymentMethodCash
	}

	t := &Trip{
		ID:             types.ID(uuid.NewString()),
		Code:           GenerateCode(),
		ClientID:       cmd.ClientID,
		Origin:         cmd.Origin,
		Destination:    cmd.Destination,
		VehicleClass:   cmd.VehicleClass,
		PassengerCount: cmd.PassengerCount,
		LuggageCount:   cmd.LuggageCount,
		Notes:          cmd.Notes,
		RideType:       rideType,
		DistanceKm:     distanceKm,
		Price:          price,
		Payment:        PaymentInfo{Method: method, Status: PaymentPending},
		ScheduledAt:    scheduledAt,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.fillAddresses(ctx, t)

	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	observability.TripsCreatedTotal.Inc()

	s.notifyCreated(ctx, t)
	s.publish(ctx, t, "")
	return t, nil
}

// Accept binds a driver to a Requested or Scheduled trip. Exactly one of any
// set of concurrent Accepts wins; the rest observe ErrNotAvailable.
func (s *Service) Accept(ctx context.Context, cmd AcceptCommand) (*Trip, error) {
	drv, err := s.drivers.Get(ctx, cmd.DriverID)
	if err != nil {
		return nil, err
	}

	t, err := s.store.Get(ctx, cmd.TripID)
	if err != nil {
		return nil, err
	}
	if t.Payment.Method == PaymentMethodCash && !drv.AcceptsCash {
		return nil, ErrPaymentPolicy
	}

	var from Status
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, []Status{StatusRequested, StatusScheduled}, func(t *Trip) {
		from = t.Status
		t.Status = StatusAccepted
		d := cmd.DriverID
		t.DriverID = &d
	})
	if errors.Is(err, ErrGuardFailed) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	observability.TripTransitionsTotal.WithLabelValues("accept").Inc()

	if err := s.ledger.Assign(ctx, cmd.DriverID, updated.ID); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"trip": updated.ID, "driver": cmd.DriverID,
		}).Warn("ledger assignment failed after accept")
		observability.SideEffectFailuresTotal.WithLabelValues("ledger").Inc()
	}
	s.notifyTransition(ctx, updated, "accepted")
	s.publish(ctx, updated, from)
	return updated, nil
}

func (s *Service) Reject(ctx context.Context, cmd RejectCommand) (*Trip, error) {
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, []Status{StatusRequested}, func(t *Trip) {
		t.Status = StatusRejected
	})
	if errors.Is(err, ErrGuardFailed) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	observability.TripTransitionsTotal.WithLabelValues("reject").Inc()
	s.publish(ctx, updated, StatusRequested)
	return updated, nil
}

func (s *Service) Arrive(ctx context.Context, cmd ArriveCommand) (*Trip, error) {
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, []Status{StatusAccepted}, func(t *Trip) {
		t.Status = StatusArrived
	})
	if errors.Is(err, ErrGuardFailed) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	observability.TripTransitionsTotal.WithLabelValues("arrive").Inc()
	s.publish(ctx, updated, StatusAccepted)
	return updated, nil
}

func (s *Service) Start(ctx context.Context, cmd StartCommand) (*Trip, error) {
	t, err := s.store.Get(ctx, cmd.TripID)
	if err != nil {
		return nil, err
	}
	// The driver reference is immutable once set, so this check cannot be
	// invalidated by a concurrent transition.
	if cmd.DriverID != "" && (t.DriverID == nil || *t.DriverID != cmd.DriverID) {
		return nil, ErrNotAvailable
	}

	var from Status
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, []Status{StatusAccepted, StatusArrived}, func(t *Trip) {
		from = t.Status
		t.Status = StatusOngoing
		now := time.Now().UTC()
		t.StartedAt = &now
	})
	if errors.Is(err, ErrGuardFailed) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	observability.TripTransitionsTotal.WithLabelValues("start").Inc()
	s.notifyTransition(ctx, updated, "started")
	s.publish(ctx, updated, from)
	return updated, nil
}

// Complete finishes the trip and flips the payment status to Paid. Payment
// never moves backwards.
func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) (*Trip, error) {
	var from Status
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, []Status{StatusAccepted, StatusOngoing}, func(t *Trip) {
		from = t.Status
		t.Status = StatusCompleted
		t.Payment.Status = PaymentPaid
		now := time.Now().UTC()
		t.CompletedAt = &now
	})
	if errors.Is(err, ErrGuardFailed) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	observability.TripTransitionsTotal.WithLabelValues("complete").Inc()
	s.notifyTransition(ctx, updated, "completed")
	s.publish(ctx, updated, from)
	return updated, nil
}

// Cancel is legal from any non-terminal status, Ongoing included.
func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) (*Trip, error) {
	var from Status
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, NonTerminalStatuses(), func(t *Trip) {
		from = t.Status
		t.Status = StatusCancelled
	})
	if errors.Is(err, ErrGuardFailed) {
		// The guard admits every non-terminal status, so a failure means
		// the trip already reached a terminal state.
		return nil, ErrAlreadyTerminal
	}
	if err != nil {
		return nil, err
	}
	observability.TripTransitionsTotal.WithLabelValues("cancel").Inc()
	s.notifyTransition(ctx, updated, "cancelled")
	s.publish(ctx, updated, from)
	return updated, nil
}

// Rate records feedback on a Completed trip. Re-rating overwrites.
func (s *Service) Rate(ctx context.Context, cmd RateCommand) (*Trip, error) {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	updated, err := s.store.UpdateIf(ctx, cmd.TripID, []Status{StatusCompleted}, func(t *Trip) {
		r := cmd.Rating
		t.Rating = &r
		t.Review = cmd.Review
	})
	if errors.Is(err, ErrGuardFailed) {
		return nil, fmt.Errorf("%w: trip is not completed", ErrValidation)
	}
	return updated, err
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Trip, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID types.ID, status *Status) ([]*Trip, error) {
	return s.store.ListByParty(ctx, userID, status)
}

func (s *Service) fillAddresses(ctx context.Context, t *Trip) {
	if s.geocoder == nil {
		return
	}
	if addr, err := s.geocoder.ReverseGeocode(ctx, t.Origin); err == nil {
		t.OriginAddress = addr
	} else {
		s.log.WithError(err).Debug("origin reverse geocode failed")
	}
	if addr, err := s.geocoder.ReverseGeocode(ctx, t.Destination); err == nil {
		t.DestinationAddress = addr
	} else {
		s.log.WithError(err).Debug("destination reverse geocode failed")
	}
}

func (s *Service) publish(ctx context.Context, t *Trip, from Status) {
	if s.publisher == nil {
		return
	}
	s.publisher.TripStatusChanged(ctx, t, from)
}
