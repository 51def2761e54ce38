package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

const (
	correlationHeader      = "X-Request-ID"
	maxCorrelationIDLength = 128
)

// correlationID puts the request's correlation id into the context and echoes it in the response.
func (s *Server) correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(correlationHeader)
		if correlationID == "" || len(correlationID) > maxCorrelationIDLength {
			correlationID = uuid.NewString()
		}

		w.Header().Set(correlationHeader, correlationID)
		ctx := shell.WithCorrelationID(r.Context(), correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.logger.InfoContext(r.Context(), "http request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", shell.ToMilliseconds(time.Since(start)),
		)
	})
}

// withMiddleware applies the router middleware to a handler the router serves without it.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return s.correlationID(s.accessLog(next))
}
