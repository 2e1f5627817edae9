package handler

import (
	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/handler/http"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/ratelimit"
	"github.com/MKhiriev/soul-scribe/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. limiter may be
// nil, which leaves the chat route unthrottled.
func NewHandlers(services *service.Services, limiter ratelimit.Limiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
