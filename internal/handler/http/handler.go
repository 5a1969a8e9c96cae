package http

import (
	"github.com/Zathsiri/Api/internal/config"
	"github.com/Zathsiri/Api/internal/logger"
	"github.com/Zathsiri/Api/internal/service"
)

type Handler struct {
	services *service.Services

	authToken   string
	docsEnabled bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		authToken:   cfg.AuthToken,
		docsEnabled: cfg.Environment != config.EnvironmentProduction,
		logger:      logger,
	}
}
