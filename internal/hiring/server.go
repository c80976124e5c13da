package hiring

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
)

// Server implements hiringpb.HiringServiceServer. It handles only transport
// concerns: type conversion, streaming, and error mapping; business logic
// lives in Service.
type Server struct {
	hiringpb.UnimplementedHiringServiceServer
	svc *Service
	// maxConcurrent bounds in-flight per-chunk work in AddManyCandidates.
	maxConcurrent int
	log           logger.Logger
}

// NewServer constructs the gRPC surface over svc.
func NewServer(svc *Service, maxConcurrent int, log logger.Logger) *Server {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Server{svc: svc, maxConcurrent: maxConcurrent, log: log}
}

func (s *Server) AddCandidate(ctx context.Context, req *hiringpb.AddCandidateRequest) (*hiringpb.AddCandidateResponse, error) {
	stored, err := s.svc.Add(ctx, Candidate{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Experience: req.Experience,
		PathCV:     req.PathCV,
	})
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	return &hiringpb.AddCandidateResponse{
		Message:   fmt.Sprintf("Candidate %s successfully added", stored.Name),
		Candidate: toProto(stored),
	}, nil
}

// AddManyCandidates consumes a stream of CV references and derives a full
// candidate from each. Chunks are processed concurrently (fan-out) so the
// producer is never blocked on extraction; the stream summary waits for all
// in-flight work (join). Per-chunk failures are counted, never fatal.
func (s *Server) AddManyCandidates(stream hiringpb.HiringService_AddManyCandidatesServer) error {
	ctx := stream.Context()

	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)

	var mu sync.Mutex
	added, failed := 0, 0

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Join in-flight work so nothing outlives the handler.
			g.Wait() //nolint:errcheck
			return err
		}

		pathCV := chunk.PathCV
		g.Go(func() error {
			if _, err := s.svc.AddFromCV(ctx, pathCV); err != nil {
				s.log.Warn("bulk add: chunk failed",
					logger.String("pathCV", pathCV),
					logger.Error(err))
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			added++
			mu.Unlock()
			return nil
		})
	}

	g.Wait() //nolint:errcheck // per-chunk errors are collected, not returned

	msg := fmt.Sprintf("added %d candidate(s)", added)
	if failed > 0 {
		msg = fmt.Sprintf("%s, %d chunk(s) failed", msg, failed)
	}
	return stream.SendAndClose(&hiringpb.AddManySummary{
		AddedCount: int32(added),
		Message:    msg,
	})
}

// GetAllCandidates streams the full pool. An empty pool ends the stream
// cleanly with zero items.
func (s *Server) GetAllCandidates(_ *hiringpb.GetAllCandidatesRequest, stream hiringpb.HiringService_GetAllCandidatesServer) error {
	list, err := s.svc.List(stream.Context())
	if err != nil {
		return faults.ToStatus(err)
	}

	for i := range list {
		if err := stream.Send(toProto(list[i])); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) UpdateCandidate(ctx context.Context, req *hiringpb.UpdateCandidateRequest) (*hiringpb.UpdateCandidateResponse, error) {
	updated, err := s.svc.Update(ctx, Candidate{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Experience: req.Experience,
		PathCV:     req.PathCV,
	})
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	return &hiringpb.UpdateCandidateResponse{
		Message:   fmt.Sprintf("Candidate %s updated successfully", updated.Name),
		Candidate: toProto(updated),
	}, nil
}

func (s *Server) DeleteCandidate(ctx context.Context, req *hiringpb.DeleteCandidateRequest) (*hiringpb.DeleteCandidateResponse, error) {
	deleted, found, err := s.svc.Delete(ctx, req.ID)
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	if !found {
		return &hiringpb.DeleteCandidateResponse{
			Message: fmt.Sprintf("Candidate with id %s not found", req.ID),
			ID:      req.ID,
			Found:   false,
		}, nil
	}

	return &hiringpb.DeleteCandidateResponse{
		Message: fmt.Sprintf("Candidate %s deleted successfully", deleted.Name),
		ID:      deleted.ID,
		Found:   true,
	}, nil
}

func toProto(c Candidate) *hiringpb.Candidate {
	return &hiringpb.Candidate{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Position:   c.Position,
		Experience: c.Experience,
		PathCV:     c.PathCV,
	}
}
