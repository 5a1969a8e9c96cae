package service

import (
	"context"

	"github.com/Zathsiri/Api/internal/logger"
	"github.com/Zathsiri/Api/internal/store"
	"github.com/Zathsiri/Api/internal/validators"
	"github.com/Zathsiri/Api/models"
)

// userService is the concrete implementation of UserService. It validates
// incoming payloads and delegates storage concerns (id assignment, email
// uniqueness, partial-update application) to the repository, which applies
// them atomically under its own lock.
type userService struct {
	userRepository store.UserRepository
	userValidator  validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository
// and validator.
func NewUserService(userRepository store.UserRepository, userValidator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		userValidator:  userValidator,
		logger:         logger,
	}
}

// ListUsers returns every record in the store.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.GetAllUsers(ctx)
}

// GetUser returns the record with the given id, or [store.ErrUserNotFound].
func (s *userService) GetUser(ctx context.Context, id int) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

// CreateUser validates the payload and delegates creation to the repository.
// Any id in the payload is discarded by the store.
//
// Returns [validators.ErrEmptyEmail] for a missing email and
// [store.ErrEmailAlreadyExists] when another record holds the same address.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.userValidator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Debug().Int("id", created.ID).Msg("user created")

	return created, nil
}

// UpdateUser applies a partial update to the record with the given id.
// Email uniqueness is intentionally not re-checked on update.
func (s *userService) UpdateUser(ctx context.Context, id int, update models.UserUpdate) (models.User, error) {
	return s.userRepository.UpdateUser(ctx, id, update)
}

// DeleteUser removes the record with the given id.
func (s *userService) DeleteUser(ctx context.Context, id int) error {
	return s.userRepository.DeleteUser(ctx, id)
}
