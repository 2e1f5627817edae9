package http

import (
	"time"

	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/ratelimit"
	"github.com/MKhiriev/soul-scribe/internal/service"
)

type Handler struct {
	services *service.Services

	// limiter throttles the chat route. nil disables rate limiting.
	limiter ratelimit.Limiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Bool("rate_limit", limiter != nil).Msg("http handler created")
	return &Handler{
		services:       services,
		limiter:        limiter,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
