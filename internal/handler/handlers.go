package handler

import (
	"github.com/Zathsiri/Api/internal/config"
	"github.com/Zathsiri/Api/internal/handler/http"
	"github.com/Zathsiri/Api/internal/logger"
	"github.com/Zathsiri/Api/internal/service"
)

// Handlers aggregates the transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs every transport handler from the service layer.
func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
