package http

import "net/http"

// internalErrorBody is the fixed JSON body written for any fault caught by
// the recovery boundary. The fault detail is never surfaced to the client.
const internalErrorBody = `{"error": "Internal server error."}`

// recoverPanic is the outermost middleware stage. It establishes the failure
// boundary for the whole pipeline: any panic raised downstream is caught,
// logged, and turned into a generic 500 response with a fixed JSON body, so
// no handler fault is ever fatal to the process.
func (h *Handler) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error().
					Any("panic", rec).
					Str("method", r.Method).
					Str("uri", r.RequestURI).
					Msg("recovered from panic")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(internalErrorBody))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
