// The HTTP gateway: the single entry point clients talk to. Every route
// resolves its domain service through discovery and forwards the call.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/discovery"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/gateway"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/resolver"
)

func main() {
	log := logger.New("gateway", os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatal("config", logger.Error(err))
	}

	res := resolver.New(
		discovery.NewClient(cfg.DiscoveryURL),
		cfg.ResolveRetries,
		cfg.ResolveDelay,
		log,
	)
	defer res.Close()

	gw := gateway.New(res, cfg.CallTimeout, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      gw.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("gateway listening", logger.String("port", cfg.Port))
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
