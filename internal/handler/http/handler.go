package http

import (
	"time"

	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/service"
)

type Handler struct {
	services *service.Services

	// maskErrorDetails replaces problem details with generic phrases before
	// they cross the trust boundary. Enabled in production.
	maskErrorDetails bool

	// processTimeout bounds the demo processing operation.
	processTimeout time.Duration

	// version is reported by the health endpoint.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		maskErrorDetails: cfg.App.MaskErrorDetails,
		processTimeout:   cfg.Server.ProcessTimeout,
		version:          cfg.App.Version,
		logger:           logger,
	}
}
