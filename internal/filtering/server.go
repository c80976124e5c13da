package filtering

import (
	"context"
	"fmt"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/filteringpb"
)

// Server implements filteringpb.FilteringServiceServer. Transport concerns
// only; the rebuild logic lives in Service.
type Server struct {
	filteringpb.UnimplementedFilteringServiceServer
	svc *Service
	log logger.Logger
}

// NewServer constructs the gRPC surface over svc.
func NewServer(svc *Service, log logger.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// FilterCandidates rebuilds the filtered set and streams relevant candidates
// as they are judged. A request matching nobody still clears the set and ends
// the stream cleanly with zero items.
func (s *Server) FilterCandidates(req *filteringpb.FilterRequest, stream filteringpb.FilteringService_FilterCandidatesServer) error {
	count, err := s.svc.Filter(stream.Context(), req.MinExperience, req.MaxExperience, req.Position,
		func(c Candidate) error {
			return stream.Send(toProto(c))
		})
	if err != nil {
		return faults.ToStatus(err)
	}

	s.log.Info("filtering pass complete",
		logger.String("position", req.Position),
		logger.Int("matched", count))
	return nil
}

func (s *Server) DeleteCandidate(ctx context.Context, req *filteringpb.DeleteCandidateRequest) (*filteringpb.DeleteCandidateResponse, error) {
	deleted, found, err := s.svc.Delete(ctx, req.ID)
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	if !found {
		return &filteringpb.DeleteCandidateResponse{
			Message: fmt.Sprintf("Filtered candidate with id %s not found", req.ID),
			ID:      req.ID,
			Found:   false,
		}, nil
	}

	return &filteringpb.DeleteCandidateResponse{
		Message: fmt.Sprintf("Filtered candidate %s deleted successfully", deleted.Name),
		ID:      deleted.ID,
		Found:   true,
	}, nil
}

func toProto(c Candidate) *filteringpb.FilteredCandidate {
	return &filteringpb.FilteredCandidate{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Position:   c.Position,
		Experience: c.Experience,
		PathCV:     c.PathCV,
	}
}
