package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/filteringpb"
)

// filterParams tolerates both numeric and quoted experience bounds; bad
// values fall back to the defaults (0, unbounded) instead of failing.
type filterParams struct {
	MinExperience json.Number `json:"minExperience"`
	MaxExperience json.Number `json:"maxExperience"`
	Position      string      `json:"position"`
}

func coerceInt32(n json.Number, fallback int32) int32 {
	if n == "" {
		return fallback
	}
	v, err := n.Int64()
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return fallback
	}
	return int32(v)
}

func (g *Gateway) filterCandidates(w http.ResponseWriter, r *http.Request) {
	var params filterParams
	if err := decodeBody(r, &params); err != nil {
		g.writeBadRequest(w, "malformed JSON body")
		return
	}

	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Filtering(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	stream, err := client.FilterCandidates(ctx, &filteringpb.FilterRequest{
		MinExperience: coerceInt32(params.MinExperience, 0),
		MaxExperience: coerceInt32(params.MaxExperience, 0),
		Position:      params.Position,
	})
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	matched := make([]*filteringpb.FilteredCandidate, 0)
	for {
		c, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			g.writeRPCError(w, err)
			return
		}
		matched = append(matched, c)
	}

	g.log.Debug("filter pass returned", logger.Int("count", len(matched)))
	writeJSON(w, http.StatusOK, matched)
}

func (g *Gateway) deleteFilteredCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.callContext(r)
	defer cancel()

	client, err := g.clients.Filtering(ctx)
	if err != nil {
		g.writeRPCError(w, err)
		return
	}

	resp, err := client.DeleteCandidate(ctx, &filteringpb.DeleteCandidateRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		g.writeRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
