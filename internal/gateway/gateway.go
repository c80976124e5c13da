// Package gateway is the HTTP front of the platform. Each route mirrors one
// RPC of a domain service 1:1; clients are located through discovery at call
// time and cached by the resolver.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/metadata"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/authpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/filteringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
)

// Clients locates domain service clients; *resolver.Resolver implements it.
// Handlers depend on this surface so tests can serve canned clients.
type Clients interface {
	Hiring(ctx context.Context) (hiringpb.HiringServiceClient, error)
	Filtering(ctx context.Context) (filteringpb.FilteringServiceClient, error)
	Interview(ctx context.Context) (interviewpb.InterviewServiceClient, error)
	Auth(ctx context.Context) (authpb.AuthServiceClient, error)
}

// Gateway holds the shared state of every HTTP handler.
type Gateway struct {
	clients     Clients
	callTimeout time.Duration
	log         logger.Logger
}

// New builds the gateway over the given client source.
func New(clients Clients, callTimeout time.Duration, log logger.Logger) *Gateway {
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &Gateway{clients: clients, callTimeout: callTimeout, log: log}
}

// Router wires every route. The surface mirrors the domain RPCs.
func (g *Gateway) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(g.recoverPanics)
	r.Use(g.logRequests)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/candidates", func(r chi.Router) {
			r.Post("/", g.addCandidate)
			r.Post("/bulk", g.addManyCandidates)
			r.Get("/", g.listCandidates)
			r.Put("/{id}", g.updateCandidate)
			r.Delete("/{id}", g.deleteCandidate)
		})
		r.Route("/filter", func(r chi.Router) {
			r.Post("/", g.filterCandidates)
			r.Delete("/{id}", g.deleteFilteredCandidate)
		})
		r.Route("/interviews", func(r chi.Router) {
			r.Post("/schedule", g.scheduleInterviews)
			r.Post("/reschedule", g.rescheduleInterviews)
			r.Put("/{id}", g.updateInterview)
			r.Delete("/{id}", g.deleteInterview)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", g.signUp)
			r.Post("/signin", g.signIn)
		})
	})

	return r
}

// callContext derives the outgoing RPC context: per-call deadline plus the
// caller's bearer header forwarded as call metadata.
func (g *Gateway) callContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), g.callTimeout)
	if bearer := r.Header.Get("Authorization"); bearer != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", bearer)
	}
	return ctx, cancel
}
