package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Zathsiri/Api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeUser(t *testing.T, body string) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, json.Unmarshal([]byte(body), &user))
	return user
}

func decodeUsers(t *testing.T, body string) []models.User {
	t.Helper()
	var users []models.User
	require.NoError(t, json.Unmarshal([]byte(body), &users))
	return users
}

// ---- GET /api/users ----

func TestListUsers_ReturnsSeed(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/users", validAuthHeader(), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	users := decodeUsers(t, rr.Body.String())
	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, 2, users[1].ID)
}

// ---- GET /api/users/{id} ----

func TestGetUser_TableTest(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantID     int
	}{
		{name: "existing record", path: "/api/users/1", wantStatus: http.StatusOK, wantID: 1},
		{name: "absent id", path: "/api/users/42", wantStatus: http.StatusNotFound},
		{name: "non-integer id", path: "/api/users/abc", wantStatus: http.StatusNotFound},
		{name: "negative id", path: "/api/users/-1", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, tt.path, validAuthHeader(), nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantID, decodeUser(t, rr.Body.String()).ID)
			} else {
				assert.Empty(t, rr.Body.String(), "not-found responses carry no body")
			}
		})
	}
}

// ---- POST /api/users ----

func TestCreateUser_Success(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"Ann","lastName":"Lee","email":"ann.lee@example.com","department":"Sales"}`
	rr := doRequest(t, router, http.MethodPost, "/api/users", validAuthHeader(), strings.NewReader(payload))

	require.Equal(t, http.StatusCreated, rr.Code)

	created := decodeUser(t, rr.Body.String())
	assert.Equal(t, 3, created.ID, "id should be previous max + 1")
	assert.Equal(t, "Ann", created.FirstName)
	assert.Equal(t, "Lee", created.LastName)
	assert.Equal(t, "ann.lee@example.com", created.Email)
	assert.Equal(t, "Sales", created.Department)
	assert.Equal(t, "/api/users/3", rr.Header().Get("Location"))

	// the created record is immediately retrievable
	got := doRequest(t, router, http.MethodGet, "/api/users/3", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, created, decodeUser(t, got.Body.String()))
}

func TestCreateUser_ClientSuppliedIDIsIgnored(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"id":99,"firstName":"Ann","email":"ann@example.com"}`
	rr := doRequest(t, router, http.MethodPost, "/api/users", validAuthHeader(), strings.NewReader(payload))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, decodeUser(t, rr.Body.String()).ID)
}

func TestCreateUser_EmptyEmail(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "email field absent", payload: `{"firstName":"Ann","lastName":"Lee"}`},
		{name: "email empty string", payload: `{"firstName":"Ann","email":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodPost, "/api/users", validAuthHeader(), strings.NewReader(tt.payload))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "El email es requerido\n", rr.Body.String())
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"Copy","email":"john.doe@example.com"}`
	rr := doRequest(t, router, http.MethodPost, "/api/users", validAuthHeader(), strings.NewReader(payload))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "El email ya está registrado\n", rr.Body.String())
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/api/users", validAuthHeader(), strings.NewReader("{not json"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- PUT /api/users/{id} ----

func TestUpdateUser_PartialUpdateRetainsFields(t *testing.T) {
	router := newTestRouter(t)

	before := doRequest(t, router, http.MethodGet, "/api/users/1", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, before.Code)
	original := decodeUser(t, before.Body.String())

	rr := doRequest(t, router, http.MethodPut, "/api/users/1", validAuthHeader(),
		strings.NewReader(`{"department":"Finance"}`))

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	after := doRequest(t, router, http.MethodGet, "/api/users/1", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, after.Code)
	updated := decodeUser(t, after.Body.String())

	assert.Equal(t, "Finance", updated.Department)
	assert.Equal(t, original.FirstName, updated.FirstName)
	assert.Equal(t, original.LastName, updated.LastName)
	assert.Equal(t, original.Email, updated.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPut, "/api/users/42", validAuthHeader(),
		strings.NewReader(`{"department":"Finance"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateUser_NonIntegerID(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPut, "/api/users/abc", validAuthHeader(),
		strings.NewReader(`{"department":"Finance"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- DELETE /api/users/{id} ----

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodDelete, "/api/users/1", validAuthHeader(), nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	gone := doRequest(t, router, http.MethodGet, "/api/users/1", validAuthHeader(), nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)

	list := doRequest(t, router, http.MethodGet, "/api/users", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Len(t, decodeUsers(t, list.Body.String()), 1)

	again := doRequest(t, router, http.MethodDelete, "/api/users/1", validAuthHeader(), nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

// ---- Auth gate side effects ----

func TestUnauthenticatedRequestsHaveNoSideEffects(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"Ghost","email":"ghost@example.com"}`
	rr := doRequest(t, router, http.MethodPost, "/api/users", "", strings.NewReader(payload))
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doRequest(t, router, http.MethodDelete, "/api/users/1", "Bearer wrongtoken", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	list := doRequest(t, router, http.MethodGet, "/api/users", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, list.Code)

	users := decodeUsers(t, list.Body.String())
	assert.Len(t, users, 2, "rejected requests must not have touched the store")
	for _, user := range users {
		assert.NotEqual(t, "ghost@example.com", user.Email)
	}
}

// ---- End-to-end scenario ----

func TestCRUDScenario(t *testing.T) {
	router := newTestRouter(t)

	// create a third record
	created := doRequest(t, router, http.MethodPost, "/api/users", validAuthHeader(),
		strings.NewReader(`{"firstName":"New","lastName":"User","email":"new@x.com","department":"Support"}`))
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, 3, decodeUser(t, created.Body.String()).ID)

	// it is retrievable with the submitted fields
	got := doRequest(t, router, http.MethodGet, "/api/users/3", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, got.Code)
	user := decodeUser(t, got.Body.String())
	assert.Equal(t, "new@x.com", user.Email)
	assert.Equal(t, "Support", user.Department)

	// drop the first seed record
	deleted := doRequest(t, router, http.MethodDelete, "/api/users/1", validAuthHeader(), nil)
	require.Equal(t, http.StatusNoContent, deleted.Code)

	gone := doRequest(t, router, http.MethodGet, "/api/users/1", validAuthHeader(), nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)

	// exactly records 2 and 3 remain
	list := doRequest(t, router, http.MethodGet, "/api/users", validAuthHeader(), nil)
	require.Equal(t, http.StatusOK, list.Code)

	remaining := decodeUsers(t, list.Body.String())
	require.Len(t, remaining, 2)

	ids := []int{remaining[0].ID, remaining[1].ID}
	assert.ElementsMatch(t, []int{2, 3}, ids, fmt.Sprintf("unexpected ids: %v", ids))
}
