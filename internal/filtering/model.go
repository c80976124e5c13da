// Package filtering contains the business logic of the filtering service:
// rebuilding the filtered candidate set from the current candidate pool.
//
// FilterCandidates is a destructive rebuild. It reads like a query but it
// clears the whole previously filtered set before repopulating it; callers
// and tests depend on that, so keep it total rather than incremental.
package filtering

import (
	"context"
	"strings"
)

// Candidate mirrors the hiring pool record the filter reads, and doubles as
// the filtered copy it writes.
type Candidate struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Experience int32
	PathCV     string
}

// Store is the persistence surface the service needs. Candidates are read
// from the shared candidate pool; filtered copies live in their own set.
type Store interface {
	// ClearFiltered empties the filtered set.
	ClearFiltered(ctx context.Context) error
	// ListCandidates returns pool candidates matching the experience range
	// and position predicate (see matches for the exact semantics).
	ListCandidates(ctx context.Context, minExp, maxExp int32, position string) ([]Candidate, error)
	// InsertFiltered stores a relevant candidate in the filtered set.
	InsertFiltered(ctx context.Context, c Candidate) (Candidate, error)
	// DeleteFiltered removes from the filtered set only; faults.ErrNotFound
	// when absent.
	DeleteFiltered(ctx context.Context, id string) (Candidate, error)
}

// matches is the experience/position predicate. maxExp <= 0 means unbounded;
// an empty position matches any; otherwise the match is case-insensitive and
// exact.
func matches(c Candidate, minExp, maxExp int32, position string) bool {
	if c.Experience < minExp {
		return false
	}
	if maxExp > 0 && c.Experience > maxExp {
		return false
	}
	pos := strings.TrimSpace(position)
	if pos == "" {
		return true
	}
	return strings.EqualFold(c.Position, pos)
}
