package filtering

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/ai"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// Service encapsulates the filtering business logic.
type Service struct {
	store      Store
	reader     ai.TextReader
	classifier ai.Classifier
	pub        *events.Publisher
	// maxConcurrent bounds in-flight per-candidate CV processing.
	maxConcurrent int
	log           logger.Logger
}

// NewService returns a configured Service.
func NewService(store Store, reader ai.TextReader, classifier ai.Classifier, pub *events.Publisher, maxConcurrent int, log logger.Logger) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Service{
		store:         store,
		reader:        reader,
		classifier:    classifier,
		pub:           pub,
		maxConcurrent: maxConcurrent,
		log:           log,
	}
}

// Filter rebuilds the filtered set from the current candidate pool and calls
// emit for every relevant candidate as soon as it is judged, not after the
// whole pass. Candidates without a CV reference are skipped with a warning;
// per-candidate processing errors are logged, never fatal. Returns the number
// of candidates emitted.
func (s *Service) Filter(ctx context.Context, minExp, maxExp int32, position string, emit func(Candidate) error) (int, error) {
	if minExp < 0 {
		minExp = 0
	}

	if err := s.store.ClearFiltered(ctx); err != nil {
		return 0, fmt.Errorf("clear filtered set: %w", err)
	}

	candidates, err := s.store.ListCandidates(ctx, minExp, maxExp, position)
	if err != nil {
		return 0, fmt.Errorf("list candidates: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)

	var (
		mu    sync.Mutex
		count int
	)

	for i := range candidates {
		c := candidates[i]

		if c.PathCV == "" {
			s.log.Warn("skipping candidate: CV reference missing",
				logger.String("candidate", c.Name))
			continue
		}

		g.Go(func() error {
			relevant, rationale, err := s.judge(ctx, c, position)
			if err != nil {
				s.log.Warn("CV processing failed",
					logger.String("candidate", c.Name),
					logger.Error(err))
				return nil
			}
			if !relevant {
				s.log.Info("candidate not relevant",
					logger.String("candidate", c.Name),
					logger.String("rationale", rationale))
				return nil
			}

			stored, err := s.store.InsertFiltered(ctx, c)
			if err != nil {
				s.log.Warn("persist filtered candidate failed",
					logger.String("candidate", c.Name),
					logger.Error(err))
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if err := emit(stored); err != nil {
				return err
			}
			count++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return count, err
	}

	s.pub.Publish(ctx, events.FilteringComplete, map[string]string{
		"position": position,
		"count":    strconv.Itoa(count),
	})
	return count, nil
}

func (s *Service) judge(ctx context.Context, c Candidate, position string) (bool, string, error) {
	text, err := s.reader.ReadCV(ctx, c.PathCV)
	if err != nil {
		return false, "", fmt.Errorf("read CV: %w", err)
	}
	return s.classifier.Classify(ctx, text, position)
}

// Delete removes a candidate from the filtered set only. An absent id is an
// informational outcome, not an error.
func (s *Service) Delete(ctx context.Context, id string) (Candidate, bool, error) {
	deleted, err := s.store.DeleteFiltered(ctx, id)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return Candidate{}, false, nil
		}
		return Candidate{}, false, fmt.Errorf("delete filtered candidate: %w", err)
	}
	return deleted, true, nil
}
