package mcpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *StatusRecorder) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps streaming responses working through the recorder.
func (r *StatusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (s *Server) metricsMiddleware(router *mux.Router) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.metrics == nil {
				next.ServeHTTP(w, r)
				return
			}

			s.metrics.IncrementHTTPRequests()
			recorder := &StatusRecorder{
				ResponseWriter: w,
				Status:         http.StatusOK,
			}

			now := time.Now()
			next.ServeHTTP(recorder, r)
			elapsed := float64(time.Since(now)) / float64(time.Second)

			if recorder.Status < 200 || recorder.Status > 299 {
				s.metrics.IncrementHTTPErrors()
			}

			var routeMatch mux.RouteMatch
			router.Match(r, &routeMatch)
			if routeMatch.Route != nil {
				endpoint, err := routeMatch.Route.GetPathTemplate()
				if err != nil {
					endpoint = "unknown"
				}
				s.metrics.ObserveAPIEndpointDuration(endpoint, r.Method, strconv.Itoa(recorder.Status), elapsed)
			}
		})
	}
}
