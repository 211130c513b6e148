// README: Trip aggregate, status definitions, and the transition table.
package trip

import (
	"time"

	"mishwar/internal/types"
)

type Status string

const (
	StatusRequested Status = "Requested"
	StatusScheduled Status = "Scheduled"
	StatusAccepted  Status = "Accepted"
	StatusArrived   Status = "Arrived"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusRejected  Status = "Rejected"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

type PaymentInfo struct {
	Method string
	Status PaymentStatus
}

const (
	RideTypeNormal    = "normal"
	RideTypeScheduled = "scheduled"
)

type Trip struct {
	ID       types.ID
	Code     string
	ClientID types.ID
	// DriverID is set by Accept and never cleared afterwards; a cancelled
	// trip keeps its driver reference for audit.
	DriverID *types.ID

	Origin             types.Point
	Destination        types.Point
	OriginAddress      string
	DestinationAddress string

	VehicleClass   string
	PassengerCount int
	LuggageCount   int
	Notes          string
	RideType       string

	DistanceKm float64
	Price      types.Money
	Payment    PaymentInfo

	ScheduledAt *time.Time
	Status      Status

	Rating *int
	Review string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// AllowedTransitions represents the trip state flow as code. Completed,
// Cancelled, and Rejected are terminal: they have no outgoing edges.
var AllowedTransitions = map[Status][]Status{
	StatusRequested: {StatusAccepted, StatusRejected, StatusCancelled},
	StatusScheduled: {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusArrived, StatusOngoing, StatusCompleted, StatusCancelled},
	StatusArrived:   {StatusOngoing, StatusCancelled},
	StatusOngoing:   {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

func IsTerminal(s Status) bool {
	_, ok := AllowedTransitions[s]
	return !ok
}

// NonTerminalStatuses lists every status a Cancel may depart from.
func NonTerminalStatuses() []Status {
	return []Status{StatusRequested, StatusScheduled, StatusAccepted, StatusArrived, StatusOngoing}
}
