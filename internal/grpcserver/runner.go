// Package grpcserver runs a domain gRPC service through the shared lifecycle:
// listen, serve, announce to discovery, re-announce on a heartbeat, stop on
// signal. Business servers are attached by the caller; auth interceptors ride
// in as server options.
package grpcserver

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/discovery"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// Run blocks until the process is signalled or the listener fails. register
// is called once with the fresh server so the caller can attach its service.
func Run(ctx context.Context, cfg *config.Service, log logger.Logger, register func(*grpc.Server), opts ...grpc.ServerOption) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return fmt.Errorf("port %q is not numeric: %w", cfg.Port, err)
	}

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	}

	srv := grpc.NewServer(opts...)
	register(srv)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("gRPC listening", logger.String("port", cfg.Port))
		serveErr <- srv.Serve(lis)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go announce(ctx, cfg, port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("shutting down")
	srv.GracefulStop()
	return nil
}

// announce registers with discovery once the server is up and keeps the
// registration alive. Failure is non-fatal: the service still serves, it is
// just not discoverable until the next heartbeat lands.
func announce(ctx context.Context, cfg *config.Service, port int, log logger.Logger) {
	client := discovery.NewClient(cfg.DiscoveryURL)

	register := func() {
		if err := client.Register(ctx, cfg.Name, cfg.Host, port); err != nil {
			log.Warn("discovery registration failed", logger.Error(err))
			return
		}
		log.Debug("discovery registration refreshed", logger.String("service", cfg.Name))
	}
	register()

	interval := cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			register()
		}
	}
}
