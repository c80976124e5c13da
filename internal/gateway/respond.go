package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/grpc/status"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/resolver"
)

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// httpStatusFor maps an RPC call failure to the HTTP status the gateway
// returns. A service that discovery cannot locate is 503.
func httpStatusFor(err error) int {
	if errors.Is(err, resolver.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	if st, ok := status.FromError(err); ok {
		return faults.HTTPStatus(st.Code())
	}
	return http.StatusInternalServerError
}

// messageFor extracts the user-facing message of an RPC failure.
func messageFor(err error) string {
	if errors.Is(err, resolver.ErrUnavailable) {
		return "service unavailable"
	}
	if st, ok := status.FromError(err); ok {
		return st.Message()
	}
	return "internal server error"
}

func (g *Gateway) writeRPCError(w http.ResponseWriter, err error) {
	code := httpStatusFor(err)
	if code == http.StatusInternalServerError {
		g.log.Error("rpc call failed", logger.Error(err))
	}
	writeJSON(w, code, map[string]string{"message": messageFor(err)})
}

func (g *Gateway) writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"message": msg})
}

func decodeBody(r *http.Request, into any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(into)
}
