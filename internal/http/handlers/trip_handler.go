// README: Client-side trip handlers for create/get/list/cancel/rate.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mishwar/internal/modules/trip"
	"mishwar/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type createTripReq struct {
	ClientID       string       `json:"client_id"`
	VehicleClass   string       `json:"vehicle_class"`
	Origin         *types.Point `json:"origin"`
	Destination    *types.Point `json:"destination"`
	ScheduledAt    *time.Time   `json:"scheduled_at"`
	PaymentMethod  string       `json:"payment_method"`
	PassengerCount int          `json:"passenger_count"`
	LuggageCount   int          `json:"luggage_count"`
	Notes          string       `json:"notes"`
}

func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	clientID := req.ClientID
	if clientID == "" {
		clientID = c.GetString("userID")
	}
	if req.Origin == nil || req.Destination == nil {
		writeError(c, http.StatusBadRequest, "invalid location data")
		return
	}
	t, err := h.trips.Create(c.Request.Context(), trip.CreateCommand{
		ClientID:       types.ID(clientID),
		VehicleClass:   req.VehicleClass,
		Origin:         *req.Origin,
		Destination:    *req.Destination,
		ScheduledAt:    req.ScheduledAt,
		PaymentMethod:  req.PaymentMethod,
		PassengerCount: req.PassengerCount,
		LuggageCount:   req.LuggageCount,
		Notes:          req.Notes,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toTripResponse(t))
}

func (h *TripHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

func (h *TripHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		userID = c.GetString("userID")
	}
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	var status *trip.Status
	if raw := c.Query("status"); raw != "" {
		s := trip.Status(raw)
		status = &s
	}
	list, err := h.trips.ListForUser(c.Request.Context(), types.ID(userID), status)
	if err != nil {
		writeTripError(c, err)
		return
	}
	out := make([]tripResponse, len(list))
	for i, t := range list {
		out[i] = toTripResponse(t)
	}
	writeJSON(c, http.StatusOK, gin.H{"count": len(out), "trips": out})
}

func (h *TripHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Cancel(c.Request.Context(), trip.CancelCommand{TripID: types.ID(id)})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

type rateTripReq struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func (h *TripHandler) Rate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	var req rateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.trips.Rate(c.Request.Context(), trip.RateCommand{
		TripID: types.ID(id),
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}
