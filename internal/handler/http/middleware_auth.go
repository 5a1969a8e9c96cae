package http

import (
	"net/http"
	"strings"

	"github.com/Zathsiri/Api/internal/logger"
)

// Response bodies written by the auth middleware. The two rejection cases
// share the status code but use distinct wording.
const (
	msgMissingToken = "Unauthorized: Missing or invalid token."
	msgInvalidToken = "Unauthorized: Invalid token."
)

// auth is the authentication gate of the pipeline. It compares the whole
// "Authorization" header case-insensitively against "Bearer <token>" with
// the configured static token.
//
// Rejections short-circuit the chain with HTTP 401, so the
// request/response logging stage (which sits after this one) never sees
// them:
//   - missing or empty header → [msgMissingToken]
//   - any other mismatch      → [msgInvalidToken]
//
// This is a placeholder credential check, not a real authentication scheme:
// there is no expiry, no per-user identity, and no revocation.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("missing `Authorization` header")
			http.Error(w, msgMissingToken, http.StatusUnauthorized)
			return
		}

		if !strings.EqualFold(authHeader, "Bearer "+h.authToken) {
			log.Warn().Msg("invalid bearer token")
			http.Error(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
