// README: Notification copy for trip lifecycle events.
package trip

import (
	"context"
	"fmt"
)

const (
	recipientClient = "Client"
	recipientDriver = "Driver"

	categoryTrip    = "trip"
	categoryPayment = "payment"
)

func (s *Service) notifyCreated(ctx context.Context, t *Trip) {
	if s.notifier == nil {
		return
	}
	if t.Status == StatusScheduled {
		s.notifier.Push(ctx, t.ClientID, recipientClient,
			"Trip scheduled",
			fmt.Sprintf("Your trip %s is scheduled for %s.", t.Code, t.ScheduledAt.Format("Jan 2 15:04")),
			categoryTrip)
		return
	}
	s.notifier.Push(ctx, t.ClientID, recipientClient,
		"Trip requested",
		fmt.Sprintf("Your trip %s has been requested and is awaiting a driver.", t.Code),
		categoryTrip)
}

// notifyTransition emits one notification to the client and, when a driver
// is assigned, one to the driver. Fired once per committed transition.
func (s *Service) notifyTransition(ctx context.Context, t *Trip, event string) {
	if s.notifier == nil {
		return
	}

	var clientTitle, clientMsg, driverTitle, driverMsg, category string
	switch event {
	case "accepted":
		clientTitle = "Driver on the way"
		clientMsg = fmt.Sprintf("A driver has accepted your trip %s.", t.Code)
		driverTitle = "Trip assigned"
		driverMsg = fmt.Sprintf("You accepted trip %s.", t.Code)
		category = categoryTrip
	case "started":
		clientTitle = "Trip started"
		clientMsg = fmt.Sprintf("Your trip %s is now in progress.", t.Code)
		driverTitle = "Trip started"
		driverMsg = fmt.Sprintf("Trip %s is now in progress.", t.Code)
		category = categoryTrip
	case "completed":
		clientTitle = "Trip completed"
		clientMsg = fmt.Sprintf("Trip %s is complete. Payment has been recorded.", t.Code)
		driverTitle = "Trip completed"
		driverMsg = fmt.Sprintf("Trip %s is complete.", t.Code)
		category = categoryPayment
	case "cancelled":
		clientTitle = "Trip cancelled"
		clientMsg = fmt.Sprintf("Trip %s has been cancelled.", t.Code)
		driverTitle = "Trip cancelled"
		driverMsg = fmt.Sprintf("Trip %s has been cancelled.", t.Code)
		category = categoryTrip
	default:
		return
	}

	s.notifier.Push(ctx, t.ClientID, recipientClient, clientTitle, clientMsg, category)
	if t.DriverID != nil {
		s.notifier.Push(ctx, *t.DriverID, recipientDriver, driverTitle, driverMsg, category)
	}
}
