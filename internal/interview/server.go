package interview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
)

// Server implements interviewpb.InterviewServiceServer. Transport concerns
// only; scheduling logic lives in Service.
type Server struct {
	interviewpb.UnimplementedInterviewServiceServer
	svc *Service
	// maxConcurrent bounds in-flight per-record work in StreamAndReschedule.
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

func (s *Server) ScheduleInterviews(ctx context.Context, req *interviewpb.ScheduleRequest) (*interviewpb.ScheduleResponse, error) {
	scheduled, err := s.svc.Schedule(ctx, req.Date)
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	out := make([]*interviewpb.Interview, 0, len(scheduled))
	for i := range scheduled {
		out = append(out, toProto(scheduled[i]))
	}
	return &interviewpb.ScheduleResponse{
		Message:   fmt.Sprintf("Scheduled %d interview(s)", len(out)),
		Scheduled: out,
	}, nil
}

func (s *Server) UpdateInterview(ctx context.Context, req *interviewpb.UpdateInterviewRequest) (*interviewpb.UpdateInterviewResponse, error) {
	updated, err := s.svc.Update(ctx, req.ID, req.NewDate, req.NewTime)
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	return &interviewpb.UpdateInterviewResponse{
		Message: fmt.Sprintf("Interview for %s moved to %s %s", updated.CandidateName, updated.Date, updated.Time),
		Updated: toProto(updated),
	}, nil
}

func (s *Server) DeleteInterview(ctx context.Context, req *interviewpb.DeleteInterviewRequest) (*interviewpb.DeleteInterviewResponse, error) {
	deleted, found, err := s.svc.Delete(ctx, req.ID)
	if err != nil {
		return nil, faults.ToStatus(err)
	}

	if !found {
		return &interviewpb.DeleteInterviewResponse{
			Message: fmt.Sprintf("Interview with id %s not found", req.ID),
			ID:      req.ID,
			Found:   false,
		}, nil
	}

	return &interviewpb.DeleteInterviewResponse{
		Message: fmt.Sprintf("Interview for %s deleted successfully", deleted.CandidateName),
		ID:      deleted.ID,
		Found:   true,
	}, nil
}

// StreamAndReschedule clears the interview set and re-books each incoming
// record at a random free hour on its date, streaming every assignment back
// as soon as it is persisted. Records are processed concurrently (fan-out);
// a date running out of hours fails that record (logged) without aborting
// the stream, and the handler joins all in-flight work before closing.
func (s *Server) StreamAndReschedule(stream interviewpb.InterviewService_StreamAndRescheduleServer) error {
	ctx := stream.Context()

	session, err := s.svc.StartReschedule(ctx)
	if err != nil {
		return faults.ToStatus(err)
	}

	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)

	var sendMu sync.Mutex

	for {
		rec, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Join in-flight work before handing the stream back to
			// grpc; a goroutine must never call Send after the
			// handler has returned.
			g.Wait() //nolint:errcheck
			return err
		}

		name, date := rec.CandidateName, rec.Date
		g.Go(func() error {
			assigned, err := session.Assign(ctx, name, date)
			if err != nil {
				s.log.Warn("reschedule: record skipped",
					logger.String("candidate", name),
					logger.String("date", date),
					logger.Error(err))
				return nil
			}

			sendMu.Lock()
			defer sendMu.Unlock()
			return stream.Send(toProto(assigned))
		})
	}

	return g.Wait()
}

func toProto(iv Interview) *interviewpb.Interview {
	return &interviewpb.Interview{
		ID:            iv.ID,
		CandidateName: iv.CandidateName,
		Date:          iv.Date,
		Time:          iv.Time,
	}
}
