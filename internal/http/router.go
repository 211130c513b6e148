// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"mishwar/internal/http/handlers"
	"mishwar/internal/http/middleware"
	"mishwar/internal/modules/driver"
	"mishwar/internal/modules/notification"
	"mishwar/internal/modules/trip"
)

type RouterDeps struct {
	Trips         *trip.Service
	Notifications *notification.Service
	Ledger        driver.Ledger
	Log           *logrus.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	if deps.Log != nil {
		r.Use(middleware.Logging(deps.Log))
	}
	r.Use(middleware.Metrics())
	r.Use(middleware.Identity())

	tripHandler := handlers.NewTripHandler(deps.Trips)
	driverHandler := handlers.NewDriverHandler(deps.Trips, deps.Ledger)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)

	api := r.Group("/api")
	api.POST("/trips", tripHandler.Create)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)
	api.POST("/trips/:id/cancel", tripHandler.Cancel)
	api.POST("/trips/:id/rate", tripHandler.Rate)

	api.POST("/trips/:id/accept", driverHandler.Accept)
	api.POST("/trips/:id/reject", driverHandler.Reject)
	api.POST("/trips/:id/arrive", driverHandler.Arrive)
	api.POST("/trips/:id/start", driverHandler.Start)
	api.POST("/trips/:id/complete", driverHandler.Complete)
	api.GET("/drivers/:id/trips", driverHandler.LedgerTrips)

	api.GET("/notifications", notificationHandler.List)
	api.POST("/notifications/:id/read", notificationHandler.MarkRead)
	api.DELETE("/notifications/:id", notificationHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
