package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Rimao416/facture/internal/logger"
)

// requestIDHeader carries the per-request correlation ID, generated here
// unless the client already sent one.
const requestIDHeader = "X-Request-ID"

// requestID returns the correlation ID of a request, after the middleware
// has run.
func requestID(r *http.Request) string {
	return r.Header.Get(requestIDHeader)
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogging assigns a request ID and logs one line per request with
// method, path, status and duration.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log := logger.WithRequestID(id)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
