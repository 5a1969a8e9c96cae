package store

import (
	"context"

	"github.com/Zathsiri/Api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the data-access contract for user records.
// Implementations must be safe for concurrent use.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
}
