package gateway

import (
	"net/http"
	"time"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (g *Gateway) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		g.log.Info("http request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", rec.status),
			logger.Duration("elapsed", time.Since(start)))
	})
}

func (g *Gateway) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				g.log.Error("handler panic",
					logger.String("path", r.URL.Path),
					logger.Any("panic", rec))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
