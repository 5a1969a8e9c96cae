package service

import (
	"context"

	"github.com/Zathsiri/Api/models"
)

// UserService exposes the CRUD operations of the user directory to the
// transport layer.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
}
