// README: Directed user notification record.
package notification

import (
	"time"

	"mishwar/internal/types"
)

type RecipientKind string

const (
	KindClient RecipientKind = "Client"
	KindDriver RecipientKind = "Driver"
)

const (
	CategoryTrip    = "trip"
	CategoryPayment = "payment"
	CategorySystem  = "system"
)

type Notification struct {
	ID            types.ID
	RecipientID   types.ID
	RecipientKind RecipientKind
	Title         string
	Message       string
	Category      string
	Read          bool
	CreatedAt     time.Time
}
