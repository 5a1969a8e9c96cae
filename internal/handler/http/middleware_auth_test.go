// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zathsiri/Api/internal/logger"
	"github.com/stretchr/testify/assert"
)

// ---- Helpers ----

const testToken = "mysecrettoken"

// injectNopLogger puts a nop logger into the request context the same way
// withRequestLogger does, so FromRequest works in isolation.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
		nextCalled     bool
	}{
		{
			name:           "missing Authorization header → 401 missing-token message",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgMissingToken,
		},
		{
			name:           "wrong token → 401 invalid-token message",
			authHeader:     "Bearer wrongtoken",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgInvalidToken,
		},
		{
			name:           "wrong scheme → 401 invalid-token message",
			authHeader:     "Basic mysecrettoken",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgInvalidToken,
		},
		{
			name:           "token only, no scheme → 401",
			authHeader:     "mysecrettoken",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgInvalidToken,
		},
		{
			name:           "trailing garbage → 401",
			authHeader:     "Bearer mysecrettoken extra",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgInvalidToken,
		},
		{
			name:           "exact token → next called",
			authHeader:     "Bearer mysecrettoken",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "case-insensitive match → next called",
			authHeader:     "BEARER MYSECRETTOKEN",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "mixed case match → next called",
			authHeader:     "bearer MySecretToken",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{authToken: testToken, logger: logger.Nop()}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody+"\n", rr.Body.String())
			}
		})
	}
}
