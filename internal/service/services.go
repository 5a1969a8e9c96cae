package service

import (
	"github.com/Zathsiri/Api/internal/logger"
	"github.com/Zathsiri/Api/internal/store"
	"github.com/Zathsiri/Api/internal/validators"
)

// Services aggregates every service used by the transport layer.
type Services struct {
	UserService UserService
}

// NewServices wires the service layer to the given storages.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, validators.NewUserValidator(), logger),
	}
}
