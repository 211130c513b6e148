// README: Driver-side trip handlers for accept/reject/arrive/start/complete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mishwar/internal/modules/driver"
	"mishwar/internal/modules/trip"
	"mishwar/internal/types"
)

type DriverHandler struct {
	trips  *trip.Service
	ledger driver.Ledger
}

func NewDriverHandler(trips *trip.Service, ledger driver.Ledger) *DriverHandler {
	return &DriverHandler{trips: trips, ledger: ledger}
}

func (h *DriverHandler) driverID(c *gin.Context) string {
	if id := c.Query("driver_id"); id != "" {
		return id
	}
	return c.GetString("userID")
}

func (h *DriverHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	driverID := h.driverID(c)
	if id == "" || driverID == "" {
		writeError(c, http.StatusBadRequest, "missing trip or driver id")
		return
	}
	t, err := h.trips.Accept(c.Request.Context(), trip.AcceptCommand{
		TripID:   types.ID(id),
		DriverID: types.ID(driverID),
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

func (h *DriverHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Reject(c.Request.Context(), trip.RejectCommand{TripID: types.ID(id)})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

func (h *DriverHandler) Arrive(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Arrive(c.Request.Context(), trip.ArriveCommand{TripID: types.ID(id)})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

func (h *DriverHandler) Start(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Start(c.Request.Context(), trip.StartCommand{
		TripID:   types.ID(id),
		DriverID: types.ID(h.driverID(c)),
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

func (h *DriverHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Complete(c.Request.Context(), trip.CompleteCommand{TripID: types.ID(id)})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

// LedgerTrips serves the denormalized "my trips" index for a driver.
func (h *DriverHandler) LedgerTrips(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	ids, err := h.ledger.TripsForDriver(c.Request.Context(), types.ID(id))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"driver_id": id, "trip_ids": ids})
}
