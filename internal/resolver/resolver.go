// Package resolver turns a logical service name into a ready-to-use gRPC
// client, hiding discovery lookup, retry, and connection setup from callers.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/registry"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/authpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/filteringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
)

// ErrUnavailable reports that discovery could not locate the service within
// the configured attempt budget. The gateway maps it to a 5xx.
var ErrUnavailable = errors.New("service unavailable")

// Locator is the slice of the discovery client the resolver needs.
type Locator interface {
	Lookup(ctx context.Context, serviceName string) (registry.ServiceRecord, error)
}

// Resolver caches one client per logical service name for the process
// lifetime. Cached clients are never invalidated, so a service restarting at
// a new address keeps being addressed at the old one until this process
// restarts; an accepted staleness risk.
type Resolver struct {
	locator Locator
	retries int
	delay   time.Duration
	log     logger.Logger

	mu      sync.Mutex
	clients map[string]any
	conns   map[string]*grpc.ClientConn
	descs   map[string]rpc.Descriptor
}

// New constructs a Resolver. retries bounds discovery lookup attempts per
// resolution; delay is the fixed pause between attempts.
func New(locator Locator, retries int, delay time.Duration, log logger.Logger) *Resolver {
	if retries < 1 {
		retries = 1
	}
	return &Resolver{
		locator: locator,
		retries: retries,
		delay:   delay,
		log:     log,
		clients: make(map[string]any),
		conns:   make(map[string]*grpc.ClientConn),
		descs:   make(map[string]rpc.Descriptor),
	}
}

// Resolve returns the client for serviceName, building and caching it on
// first use. The returned value is the service's typed client interface;
// callers assert the concrete type (or use the typed helpers below).
func (r *Resolver) Resolve(ctx context.Context, serviceName string) (any, error) {
	r.mu.Lock()
	if c, ok := r.clients[serviceName]; ok {
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	rec, err := r.locate(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have raced us here; keep the first client.
	if c, ok := r.clients[serviceName]; ok {
		return c, nil
	}

	desc, ok := r.descs[serviceName]
	if !ok {
		desc, ok = rpc.LookupDescriptor(serviceName)
		if !ok {
			return nil, fmt.Errorf("no contract registered for service %q", serviceName)
		}
		r.descs[serviceName] = desc
	}

	target := fmt.Sprintf("%s:%d", rec.Host, rec.Port)
	conn, err := grpc.NewClient(target, rpc.DialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	client := desc.NewClient(conn)
	r.clients[serviceName] = client
	r.conns[serviceName] = conn

	r.log.Info("resolved service",
		logger.String("service", serviceName),
		logger.String("target", target))
	return client, nil
}

// locate runs the bounded lookup loop. Absence on any attempt is expected
// (the service may still be starting); exhausting the budget is not.
func (r *Resolver) locate(ctx context.Context, serviceName string) (registry.ServiceRecord, error) {
	var rec registry.ServiceRecord

	for attempt := 1; attempt <= r.retries; attempt++ {
		var err error
		rec, err = r.locator.Lookup(ctx, serviceName)
		if err == nil {
			return rec, nil
		}

		r.log.Warn("discovery lookup failed",
			logger.String("service", serviceName),
			logger.Int("attempt", attempt),
			logger.Int("maxAttempts", r.retries))

		if attempt < r.retries {
			select {
			case <-time.After(r.delay):
			case <-ctx.Done():
				return rec, ctx.Err()
			}
		}
	}

	return rec, fmt.Errorf("%w: %q not found after %d attempts", ErrUnavailable, serviceName, r.retries)
}

// Close tears down every cached connection.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, conn := range r.conns {
		if err := conn.Close(); err != nil {
			r.log.Warn("closing connection", logger.String("service", name), logger.Error(err))
		}
	}
	r.conns = make(map[string]*grpc.ClientConn)
	r.clients = make(map[string]any)
}

// Typed helpers used by the gateway handlers.

func (r *Resolver) Hiring(ctx context.Context) (hiringpb.HiringServiceClient, error) {
	c, err := r.Resolve(ctx, "HiringService")
	if err != nil {
		return nil, err
	}
	return c.(hiringpb.HiringServiceClient), nil
}

func (r *Resolver) Filtering(ctx context.Context) (filteringpb.FilteringServiceClient, error) {
	c, err := r.Resolve(ctx, "FilteringService")
	if err != nil {
		return nil, err
	}
	return c.(filteringpb.FilteringServiceClient), nil
}

func (r *Resolver) Interview(ctx context.Context) (interviewpb.InterviewServiceClient, error) {
	c, err := r.Resolve(ctx, "InterviewService")
	if err != nil {
		return nil, err
	}
	return c.(interviewpb.InterviewServiceClient), nil
}

func (r *Resolver) Auth(ctx context.Context) (authpb.AuthServiceClient, error) {
	c, err := r.Resolve(ctx, "AuthService")
	if err != nil {
		return nil, err
	}
	return c.(authpb.AuthServiceClient), nil
}
