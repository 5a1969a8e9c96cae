// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"status": "ok"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	// NaN is not representable in JSON and makes json.Marshal fail
	_, err := WriteJSON(rr, math.NaN(), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
