// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mishwar/internal/modules/driver"
	"mishwar/internal/modules/notification"
	"mishwar/internal/modules/trip"
	"mishwar/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrNotFound), errors.Is(err, driver.ErrNotFound), errors.Is(err, notification.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, trip.ErrNotAvailable), errors.Is(err, trip.ErrAlreadyTerminal), errors.Is(err, trip.ErrPaymentPolicy):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

type tripResponse struct {
	ID                 string      `json:"id"`
	Code               string      `json:"code"`
	ClientID           string      `json:"client_id"`
	DriverID           string      `json:"driver_id,omitempty"`
	Origin             types.Point `json:"origin"`
	Destination        types.Point `json:"destination"`
	OriginAddress      string      `json:"origin_address,omitempty"`
	DestinationAddress string      `json:"destination_address,omitempty"`
	VehicleClass       string      `json:"vehicle_class"`
	PassengerCount     int         `json:"passenger_count,omitempty"`
	LuggageCount       int         `json:"luggage_count,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	RideType           string      `json:"ride_type"`
	DistanceKm         float64     `json:"distance_km"`
	Price              float64     `json:"price"`
	Currency           string      `json:"currency"`
	PaymentMethod      string      `json:"payment_method"`
	PaymentStatus      string      `json:"payment_status"`
	ScheduledAt        *time.Time  `json:"scheduled_at,omitempty"`
	Status             string      `json:"status"`
	Rating             *int        `json:"rating,omitempty"`
	Review             string      `json:"review,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	StartedAt          *time.Time  `json:"started_at,omitempty"`
	CompletedAt        *time.Time  `json:"completed_at,omitempty"`
}

func toTripResponse(t *trip.Trip) tripResponse {
	resp := tripResponse{
		ID:                 string(t.ID),
		Code:               t.Code,
		ClientID:           string(t.ClientID),
		Origin:             t.Origin,
		Destination:        t.Destination,
		OriginAddress:      t.OriginAddress,
		DestinationAddress: t.DestinationAddress,
		VehicleClass:       t.VehicleClass,
		PassengerCount:     t.PassengerCount,
		LuggageCount:       t.LuggageCount,
		Notes:              t.Notes,
		RideType:           t.RideType,
		DistanceKm:         t.DistanceKm,
		Price:              t.Price.Amount,
		Currency:           t.Price.Currency,
		PaymentMethod:      t.Payment.Method,
		PaymentStatus:      string(t.Payment.Status),
		ScheduledAt:        t.ScheduledAt,
		Status:             string(t.Status),
		Rating:             t.Rating,
		Review:             t.Review,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		StartedAt:          t.StartedAt,
		CompletedAt:        t.CompletedAt,
	}
	if t.DriverID != nil {
		resp.DriverID = string(*t.DriverID)
	}
	return resp
}
