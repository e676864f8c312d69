package api

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/activitymap/activitymap-server/internal/http/response"
)

// recoverer turns a panicking handler into a 500 with the uniform error body.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
				panic(rec)
			}

			s.logger.Error("Panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()),
			)
			response.InternalError(w, "internal server error", s.logger)
		}()

		next.ServeHTTP(w, r)
	})
}

// handleNotFound answers routes that do not exist.
func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	response.NotFound(w, "route not found", s.logger)
}

// handleMethodNotAllowed answers known routes called with the wrong method.
func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	response.MethodNotAllowed(w, "method not allowed", s.logger)
}
