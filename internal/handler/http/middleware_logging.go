package http

import (
	"net/http"
	"time"

	"github.com/Zathsiri/Api/internal/logger"
)

// withLogging records the request method and URI before invoking the next
// stage, and the response status (with size and duration) after it returns.
// It sits after the auth gate, so requests rejected there are not logged
// by this stage.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		uri := r.RequestURI
		method := r.Method

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Msg("request received")

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
