// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

package store

import (
	"context"
	"sync"

	"github.com/Zathsiri/Api/models"
)

// usersMemoryStorage holds all user records in process memory for the
// lifetime of the process. A single mutex serializes every read-modify-write
// sequence (lookup-then-mutate, max-then-append), so concurrent requests
// cannot lose updates or compute duplicate ids.
type usersMemoryStorage struct {
	mu    sync.Mutex
	users []models.User
}

// NewUsersMemoryStorage returns a [UserRepository] pre-seeded with two
// fixed records (ids 1 and 2).
func NewUsersMemoryStorage() UserRepository {
	return &usersMemoryStorage{
		users: []models.User{
			{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Department: "Engineering"},
			{ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Department: "Marketing"},
		},
	}
}

// GetAllUsers returns a copy of every record in insertion order.
func (s *usersMemoryStorage) GetAllUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.User, len(s.users))
	copy(all, s.users)

	return all, nil
}

// GetUserByID performs a linear scan for the record with the given id.
// Returns [ErrUserNotFound] if no record matches.
func (s *usersMemoryStorage) GetUserByID(_ context.Context, id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// CreateUser appends a new record with id = max(existing ids) + 1.
// The id carried by the payload is ignored. Returns [ErrEmailAlreadyExists]
// if another record already holds the same email.
func (s *usersMemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	// max over an empty store is zero, so the first record gets id 1
	maxID := 0
	for _, existing := range s.users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	user.ID = maxID + 1
	s.users = append(s.users, user)

	return user, nil
}

// UpdateUser applies a partial update to the record with the given id.
// Only non-nil fields of update overwrite stored values. Email uniqueness
// is NOT re-checked here. Returns the updated record, or [ErrUserNotFound].
func (s *usersMemoryStorage) UpdateUser(_ context.Context, id int, update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}

		if update.FirstName != nil {
			s.users[i].FirstName = *update.FirstName
		}
		if update.LastName != nil {
			s.users[i].LastName = *update.LastName
		}
		if update.Email != nil {
			s.users[i].Email = *update.Email
		}
		if update.Department != nil {
			s.users[i].Department = *update.Department
		}

		return s.users[i], nil
	}

	return models.User{}, ErrUserNotFound
}

// DeleteUser removes the record with the given id, or returns
// [ErrUserNotFound] if it does not exist.
func (s *usersMemoryStorage) DeleteUser(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}

	return ErrUserNotFound
}
