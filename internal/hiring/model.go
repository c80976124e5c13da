// Package hiring contains the business logic of the hiring service: the
// candidate pool and its validation rules. It is transport-agnostic; the
// gRPC surface lives in server.go.
package hiring

import "context"

// Candidate is the domain candidate record.
type Candidate struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Experience int32
	PathCV     string
}

// Store is the persistence surface the service needs.
type Store interface {
	Insert(ctx context.Context, c Candidate) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	// Update replaces the candidate's fields; faults.ErrNotFound when absent.
	Update(ctx context.Context, c Candidate) (Candidate, error)
	// Delete removes by id; faults.ErrNotFound when absent.
	Delete(ctx context.Context, id string) (Candidate, error)
}
