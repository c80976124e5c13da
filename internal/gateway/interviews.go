package gateway

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
)

func (g *Gateway) scheduleInterviews(w http.ResponseWriter, r *http.Request) {
	var req interviewpb.ScheduleRequest
	if err := decodeBody(r, &req); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Interview(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.ScheduleInterviews(ctx, &req)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// rescheduleInterviews forwards a JSON array of interviews over the bidi
// stream and returns the reassigned slots. Sending runs alongside receiving
// so the handler never deadlocks on stream flow control.
func (g *Gateway) rescheduleInterviews(w http.ResponseWriter, r *http.Request) {
	var records []interviewpb.Interview
	if err := decodeBody(r, &records); err != nil {
		g.writeBadRequest(w, "expected a JSON array of interviews")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Interview(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	stream, err := client.StreamAndReschedule(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	sendErr := make(chan error, 1)
	go func() {
		for i := range records {
			if err := stream.Send(&records[i]); err != nil {
				sendErr <- err
				return
			}
		}
		sendErr <- stream.CloseSend()
	}()

	reassigned := make([]*interviewpb.Interview, 0, len(records))
	for {
		iv, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			g.writeRPCError(w, err)
			return
		}
		reassigned = append(reassigned, iv)
	}

	if err := <-sendErr; err != nil {
		g.writeRPCError(w, err)
		return
	}

	g.log.Debug("reschedule returned", logger.Int("count", len(reassigned)))
	writeJSON(w, http.StatusOK, reassigned)
}

func (g *Gateway) updateInterview(w http.ResponseWriter, r *http.Request) {
	var req interviewpb.UpdateInterviewRequest
	if err := decodeBody(r, &req); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}
	req.ID = chi.URLParam(r, "id")

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Interview(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.UpdateInterview(ctx, &req)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (g *Gateway) deleteInterview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Interview(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.DeleteInterview(ctx, &interviewpb.DeleteInterviewRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
