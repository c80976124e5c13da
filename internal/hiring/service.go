package hiring

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/ai"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// Service encapsulates all hiring business logic.
type Service struct {
	store     Store
	reader    ai.TextReader
	extractor ai.Extractor
	pub       *events.Publisher
	log       logger.Logger
}

// NewService returns a configured Service.
func NewService(store Store, reader ai.TextReader, extractor ai.Extractor, pub *events.Publisher, log logger.Logger) *Service {
	return &Service{store: store, reader: reader, extractor: extractor, pub: pub, log: log}
}

// Add validates and persists a new candidate, returning the stored record
// with its assigned identity. Validation failure performs no insert.
func (s *Service) Add(ctx context.Context, c Candidate) (Candidate, error) {
	if err := validate(c, true); err != nil {
		return Candidate{}, err
	}

	stored, err := s.store.Insert(ctx, c)
	if err != nil {
		return Candidate{}, fmt.Errorf("insert candidate: %w", err)
	}

	s.pub.Publish(ctx, events.CandidateAdded, map[string]string{
		"candidateId": stored.ID,
		"name":        stored.Name,
	})
	return stored, nil
}

// AddFromCV derives a candidate from a stored CV reference and persists it.
// Used by the bulk-add stream, one call per chunk.
func (s *Service) AddFromCV(ctx context.Context, pathCV string) (Candidate, error) {
	if pathCV == "" {
		return Candidate{}, faults.Validation("pathCV", "CV reference is required")
	}

	text, err := s.reader.ReadCV(ctx, pathCV)
	if err != nil {
		return Candidate{}, fmt.Errorf("read CV: %w", err)
	}

	extracted, err := s.extractor.ExtractCandidate(ctx, text)
	if err != nil {
		return Candidate{}, fmt.Errorf("extract candidate: %w", err)
	}

	return s.Add(ctx, Candidate{
		Name:       extracted.Name,
		Email:      extracted.Email,
		Position:   extracted.Position,
		Experience: extracted.Experience,
		PathCV:     pathCV,
	})
}

// List returns the full candidate pool. An empty pool is a normal result.
func (s *Service) List(ctx context.Context) ([]Candidate, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return list, nil
}

// Update validates and replaces the candidate's fields. An empty CV
// reference keeps the stored one. Absent id is a hard NotFound.
func (s *Service) Update(ctx context.Context, c Candidate) (Candidate, error) {
	if c.ID == "" {
		return Candidate{}, faults.Validation("id", "candidate id is required")
	}
	if err := validate(c, false); err != nil {
		return Candidate{}, err
	}

	updated, err := s.store.Update(ctx, c)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return Candidate{}, fmt.Errorf("candidate %s: %w", c.ID, faults.ErrNotFound)
		}
		return Candidate{}, fmt.Errorf("update candidate: %w", err)
	}
	return updated, nil
}

// Delete removes a candidate by id. Deleting an absent id reports
// found=false without an error: the desired end-state already holds.
func (s *Service) Delete(ctx context.Context, id string) (Candidate, bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return Candidate{}, false, nil
		}
		return Candidate{}, false, fmt.Errorf("delete candidate: %w", err)
	}
	return deleted, true, nil
}
