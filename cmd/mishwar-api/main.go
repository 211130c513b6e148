// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mishwar/internal/config"
	"mishwar/internal/events"
	httptransport "mishwar/internal/http"
	"mishwar/internal/infra"
	"mishwar/internal/logging"
	"mishwar/internal/maps"
	"mishwar/internal/modules/driver"
	"mishwar/internal/modules/notification"
	"mishwar/internal/modules/pricing"
	"mishwar/internal/modules/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logging.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	pricingSvc := pricing.NewService()
	notificationSvc := notification.NewService(notification.NewPGSink(dbPool), log)
	directory := driver.NewPGDirectory(dbPool)
	ledger := driver.NewRedisLedger(redisClient)

	deps := trip.Deps{
		Store:    trip.NewPGStore(dbPool),
		Pricing:  pricingSvc,
		Drivers:  directory,
		Ledger:   ledger,
		Notifier: notificationSvc,
		Log:      log,
	}

	if cfg.Kafka.Enabled {
		publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer publisher.Close()
		deps.Publisher = publisher
	}
	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.WithError(err).Fatal("maps client init failed")
		}
		deps.Geocoder = geocoder
	}

	tripSvc := trip.NewService(deps)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:         tripSvc,
		Notifications: notificationSvc,
		Ledger:        ledger,
		Log:           log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown error")
		}
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server exited")
	}
	log.Info("server stopped")
}
