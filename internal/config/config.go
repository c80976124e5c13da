// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Service holds runtime configuration shared by every gRPC domain service.
type Service struct {
	Name         string
	Host         string
	Port         string
	DatabaseURL  string
	RedisURL     string
	DiscoveryURL string
	JWTSecret    string
	// MaxConcurrent bounds per-item fan-out work inside streaming
	// operations (bulk add, filtering, rescheduling).
	MaxConcurrent int
	// HeartbeatInterval is how often the service re-announces itself to
	// discovery; must stay below the registry TTL.
	HeartbeatInterval time.Duration
}

// LoadService reads the environment for a domain service. name must match the
// logical service name used for discovery registration ("HiringService", …).
// portEnv names the variable holding the listen port, defaultPort applies
// when it is unset.
func LoadService(name, portEnv, defaultPort string) (*Service, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	host := os.Getenv("SERVICE_HOST")
	if host == "" {
		host = "localhost"
	}

	return &Service{
		Name:              name,
		Host:              host,
		Port:              port,
		DatabaseURL:       dbURL,
		RedisURL:          redisURL,
		DiscoveryURL:      discoveryURL(),
		JWTSecret:         secret,
		MaxConcurrent:     intEnv("MAX_CONCURRENT", 4),
		HeartbeatInterval: durationEnv("HEARTBEAT_INTERVAL", 10*time.Second),
	}, nil
}

// Discovery holds runtime configuration for the discovery endpoint.
type Discovery struct {
	Port string
	// TTL is how long a registration stays valid without a refresh.
	TTL time.Duration
	// SweepInterval is how often expired records are evicted.
	SweepInterval time.Duration
}

// LoadDiscovery reads the environment for the discovery endpoint.
func LoadDiscovery() (*Discovery, error) {
	port := os.Getenv("DISCOVERY_PORT")
	if port == "" {
		port = "3001"
	}

	return &Discovery{
		Port:          port,
		TTL:           durationEnv("REGISTRY_TTL", 30*time.Second),
		SweepInterval: durationEnv("REGISTRY_SWEEP_INTERVAL", 10*time.Second),
	}, nil
}

// Gateway holds runtime configuration for the HTTP gateway.
type Gateway struct {
	Port         string
	DiscoveryURL string
	// ResolveRetries and ResolveDelay bound the discovery lookup loop.
	ResolveRetries int
	ResolveDelay   time.Duration
	// CallTimeout is the per-RPC deadline applied by gateway handlers.
	CallTimeout time.Duration
}

// LoadGateway reads the environment for the gateway.
func LoadGateway() (*Gateway, error) {
	port := os.Getenv("GATEWAY_PORT")
	if port == "" {
		port = "8080"
	}

	return &Gateway{
		Port:           port,
		DiscoveryURL:   discoveryURL(),
		ResolveRetries: intEnv("RESOLVE_RETRIES", 3),
		ResolveDelay:   durationEnv("RESOLVE_DELAY", 500*time.Millisecond),
		CallTimeout:    durationEnv("RPC_CALL_TIMEOUT", 30*time.Second),
	}, nil
}

func discoveryURL() string {
	if u := os.Getenv("DISCOVERY_URL"); u != "" {
		return u
	}
	return "http://localhost:3001"
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func durationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
