package http

import "net/http"

// probeMessage is the fixed body of the root liveness probe.
const probeMessage = "User directory API is running."

// probe is a plain-text liveness probe. It is excluded from the generated
// API documentation on purpose.
func (h *Handler) probe(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(probeMessage))
}
