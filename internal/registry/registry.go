// Package registry keeps the in-memory mapping from service name to network
// location. It is owned by the discovery endpoint process; every other process
// talks to it over HTTP.
package registry

import (
	"sync"
	"time"
)

// ServiceRecord is the registry's view of one registered service.
// Its presence implies the service was reachable at LastSeenAt.
type ServiceRecord struct {
	ServiceName string    `json:"serviceName"`
	Host        string    `json:"host"`
	Port        int       `json:"port"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

// Store holds at most one ServiceRecord per service name.
// All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]ServiceRecord
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates an empty registry whose records expire after ttl without
// a refreshing re-registration.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[string]ServiceRecord),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Register upserts the record for name and refreshes its liveness timestamp.
// Re-registration never conflicts: services restart and must re-announce.
func (s *Store) Register(name, host string, port int) ServiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := ServiceRecord{
		ServiceName: name,
		Host:        host,
		Port:        port,
		LastSeenAt:  s.now(),
	}
	s.records[name] = rec
	return rec
}

// Lookup returns the record for name. Absence is a normal outcome (service
// not yet up, or evicted), reported through the bool.
func (s *Store) Lookup(name string) (ServiceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	return rec, ok
}

// Sweep removes every record whose last registration is older than the TTL
// and reports how many were evicted. It snapshots the expired keys under the
// read lock first so concurrent lookups never observe a half-mutated map.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.RLock()
	var expired []string
	for name, rec := range s.records {
		if rec.LastSeenAt.Before(cutoff) {
			expired = append(expired, name)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, name := range expired {
		// Re-check: the service may have re-registered between the
		// snapshot and this write.
		if rec, ok := s.records[name]; ok && rec.LastSeenAt.Before(cutoff) {
			delete(s.records, name)
			removed++
		}
	}
	return removed
}

// Len reports the number of live records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
