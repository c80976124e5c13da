package gateway

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
)

func (g *Gateway) addCandidate(w http.ResponseWriter, r *http.Request) {
	var req hiringpb.AddCandidateRequest
	if err := decodeBody(r, &req); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Hiring(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.AddCandidate(ctx, &req)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// addManyCandidates accepts a JSON array of CV references and forwards them
// over the client stream, returning the summary when the producer is done.
func (g *Gateway) addManyCandidates(w http.ResponseWriter, r *http.Request) {
	var chunks []hiringpb.CVChunk
	if err := decodeBody(r, &chunks); err != nil {
		g.writeBadRequest(w, "expected a JSON array of CV references")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Hiring(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	stream, err := client.AddManyCandidates(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	for i := range chunks {
		if err := stream.Send(&chunks[i]); err != nil {
			g.writeRPCError(w, err)
			return
		}
	}

	summary, err := stream.CloseAndRecv()
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

func (g *Gateway) listCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Hiring(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	stream, err := client.GetAllCandidates(ctx, &hiringpb.GetAllCandidatesRequest{})
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	candidates := make([]*hiringpb.Candidate, 0)
	for {
		c, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			g.writeRPCError(w, err)
			return
		}
		candidates = append(candidates, c)
	}

	g.log.Debug("candidates listed", logger.Int("count", len(candidates)))
	writeJSON(w, http.StatusOK, candidates)
}

func (g *Gateway) updateCandidate(w http.ResponseWriter, r *http.Request) {
	var req hiringpb.UpdateCandidateRequest
	if err := decodeBody(r, &req); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}
	req.ID = chi.URLParam(r, "id")

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Hiring(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.UpdateCandidate(ctx, &req)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (g *Gateway) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Hiring(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.DeleteCandidate(ctx, &hiringpb.DeleteCandidateRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
