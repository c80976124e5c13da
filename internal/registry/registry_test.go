package registry

import (
	"testing"
	"time"
)

// fixedClock lets tests move registry time forward deterministically.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(ttl time.Duration) (*Store, *fixedClock) {
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(ttl)
	s.now = clock.now
	return s, clock
}

func TestRegisterIsUpsert(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	s.Register("HiringService", "h", 9)
	s.Register("HiringService", "h", 10)

	rec, ok := s.Lookup("HiringService")
	if !ok {
		t.Fatal("Lookup after re-registration returned not found")
	}
	if rec.Port != 10 {
		t.Errorf("Lookup port = %d, want 10 (latest registration wins)", rec.Port)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 record per service name", s.Len())
	}
}

func TestLookupUnknownName(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	if _, ok := s.Lookup("NoSuchService"); ok {
		t.Error("Lookup of unknown name reported found")
	}
}

func TestSweepEvictsExpiredRecords(t *testing.T) {
	s, clock := newTestStore(30 * time.Second)

	s.Register("HiringService", "h", 9)
	clock.advance(31 * time.Second)

	if removed := s.Sweep(); removed != 1 {
		t.Fatalf("Sweep removed %d records, want 1", removed)
	}
	if _, ok := s.Lookup("HiringService"); ok {
		t.Error("Lookup found a record the sweep should have evicted")
	}
}

func TestReRegistrationResetsLiveness(t *testing.T) {
	s, clock := newTestStore(30 * time.Second)

	s.Register("AuthService", "a", 50054)
	clock.advance(20 * time.Second)
	s.Register("AuthService", "a", 50054) // refresh before expiry
	clock.advance(20 * time.Second)

	if removed := s.Sweep(); removed != 0 {
		t.Fatalf("Sweep removed %d records, want 0 after refresh", removed)
	}
	if _, ok := s.Lookup("AuthService"); !ok {
		t.Error("record refreshed before expiry did not survive the sweep")
	}
}

func TestSweepLeavesFreshRecordsAlone(t *testing.T) {
	s, clock := newTestStore(30 * time.Second)

	s.Register("Stale", "h", 1)
	clock.advance(31 * time.Second)
	s.Register("Fresh", "h", 2)

	if removed := s.Sweep(); removed != 1 {
		t.Fatalf("Sweep removed %d records, want 1", removed)
	}
	if _, ok := s.Lookup("Fresh"); !ok {
		t.Error("fresh record was evicted alongside the stale one")
	}
}
