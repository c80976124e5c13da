// Package discovery exposes the registry over HTTP. It is the only
// network-facing piece of the registry: services register themselves here on
// startup and the gateway's resolver looks service addresses up by name.
package discovery

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/registry"
)

// Server wraps a registry.Store with the register/lookup HTTP contract.
type Server struct {
	store *registry.Store
	log   logger.Logger
}

// NewServer constructs a discovery Server over the given store.
func NewServer(store *registry.Store, log logger.Logger) *Server {
	return &Server{store: store, log: log}
}

// Router builds the chi router for the discovery endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/register", s.handleRegister)
	r.Get("/services/{serviceName}", s.handleLookup)
	r.Get("/health", s.handleHealth)
	return r
}

type registerRequest struct {
	ServiceName string `json:"serviceName"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	if req.ServiceName == "" || req.Host == "" || req.Port == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "missing fields in registration"})
		return
	}

	s.store.Register(req.ServiceName, req.Host, req.Port)
	s.log.Info("service registered",
		logger.String("service", req.ServiceName),
		logger.String("host", req.Host),
		logger.Int("port", req.Port))

	writeJSON(w, http.StatusOK, map[string]string{"message": "service registered successfully"})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "serviceName")

	rec, ok := s.store.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "service not found"})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"services": s.store.Len(),
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
