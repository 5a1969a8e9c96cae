package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Zathsiri/Api/internal/logger"
	"github.com/Zathsiri/Api/internal/store"
	"github.com/Zathsiri/Api/internal/utils"
	"github.com/Zathsiri/Api/internal/validators"
	"github.com/Zathsiri/Api/models"
)

// userIDFromRequest extracts the {id} path parameter as an integer.
func userIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// listUsers returns every record in the store.
//
//	@Summary		List users
//	@Description	Returns the full ordered list of user records.
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	models.User
//	@Failure		401	{string}	string	"Unauthorized"
//	@Router			/api/users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing users")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUser returns a single record by id.
//
//	@Summary		Get user by id
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	int	true	"User id"
//	@Success		200	{object}	models.User
//	@Failure		404	{string}	string	"Not Found"
//	@Router			/api/users/{id} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		// non-integer ids do not match the route contract
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			log.Err(err).Int("id", id).Msg("error getting user")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// createUser appends a new record to the store.
//
//	@Summary		Create user
//	@Description	Creates a user record. The id in the payload is ignored; the store assigns max(existing ids) + 1.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user	body	models.User	true	"User payload"
//	@Success		201	{object}	models.User
//	@Header			201	{string}	Location	"/api/users/{id}"
//	@Failure		400	{string}	string	"El email es requerido"
//	@Failure		409	{string}	string	"El email ya está registrado"
//	@Failure		500	{object}	models.ErrorResponse	"Internal server error."
//	@Router			/api/users [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyEmail):
			log.Err(err).Msg("email is required")
			http.Error(w, "El email es requerido", http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", user.Email).Msg("email already registered")
			http.Error(w, "El email ya está registrado", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateUser applies a partial update to an existing record.
//
//	@Summary		Update user
//	@Description	Partial update: only fields present in the payload overwrite stored values.
//	@Tags			users
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	int					true	"User id"
//	@Param			update	body	models.UserUpdate	true	"Fields to overwrite"
//	@Success		204
//	@Failure		404	{string}	string	"Not Found"
//	@Router			/api/users/{id} [put]
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.UserService.UpdateUser(ctx, id, update); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			log.Err(err).Int("id", id).Msg("unexpected error occurred during user update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteUser removes a record from the store.
//
//	@Summary		Delete user
//	@Tags			users
//	@Security		BearerAuth
//	@Param			id	path	int	true	"User id"
//	@Success		204
//	@Failure		404	{string}	string	"Not Found"
//	@Router			/api/users/{id} [delete]
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			log.Err(err).Int("id", id).Msg("unexpected error occurred during user deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
