// The discovery endpoint: an HTTP registry every service announces itself to
// and every resolver queries. Expired registrations are swept on a schedule.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/discovery"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/registry"
)

func main() {
	log := logger.New("discovery", os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadDiscovery()
	if err != nil {
		log.Fatal("config", logger.Error(err))
	}

	store := registry.NewStore(cfg.TTL)

	c := cron.New()
	_, err = c.AddFunc("@every "+cfg.SweepInterval.String(), func() {
		if evicted := store.Sweep(); evicted > 0 {
			log.Info("registry sweep", logger.Int("evicted", evicted))
		}
	})
	if err != nil {
		log.Fatal("schedule sweep", logger.Error(err))
	}
	c.Start()
	defer c.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      discovery.NewServer(store, log).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("discovery listening",
			logger.String("port", cfg.Port),
			logger.Duration("ttl", cfg.TTL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server", logger.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", logger.Error(err))
	}
}
