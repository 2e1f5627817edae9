package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/validators"
	"github.com/MKhiriev/soul-scribe/models"
)

// chatService proxies one conversational turn to the upstream model with the
// user's context injected into the system prompt. Nothing is persisted.
type chatService struct {
	chatAdapter adapter.ChatAdapter
	assembler   ContextAssembler
	validator   validators.Validator

	// configured is false when no upstream API key is set.
	configured bool

	logger *logger.Logger
}

func NewChatService(chatAdapter adapter.ChatAdapter, assembler ContextAssembler, cfg config.ChatAPI, logger *logger.Logger) ChatService {
	return &chatService{
		chatAdapter: chatAdapter,
		assembler:   assembler,
		validator:   validators.NewRequestValidator(),
		configured:  cfg.APIKey != "",
		logger:      logger,
	}
}

// Chat validates message, gathers context, renders the prompt and calls the
// upstream. Upstream failures keep their adapter sentinel
// (adapter.ErrUpstreamStatus, adapter.ErrUpstreamUnavailable,
// adapter.ErrMalformedUpstreamResponse) so the caller can log the kind.
func (c *chatService) Chat(ctx context.Context, user models.User, message string) (string, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, models.ChatRequest{Message: message}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !c.configured {
		log.Error().Str("func", "*chatService.Chat").Msg("chat API key is not configured")
		return "", ErrServerMisconfigured
	}

	block := c.assembler.Assemble(ctx, user)

	messages, err := BuildMessages(block, message)
	if err != nil {
		log.Err(err).Str("func", "*chatService.Chat").Msg("failed to render system prompt")
		return "", fmt.Errorf("%w: %w", ErrServerMisconfigured, err)
	}

	started := time.Now()
	reply, err := c.chatAdapter.Complete(ctx, messages)
	if err != nil {
		log.Err(err).
			Str("func", "*chatService.Chat").
			Int64("user_id", user.UserID).
			Str("upstream_error", adapter.ErrorKind(err)).
			Dur("duration", time.Since(started)).
			Msg("chat completion failed")
		return "", err
	}

	log.Info().
		Int64("user_id", user.UserID).
		Dur("duration", time.Since(started)).
		Msg("chat completion succeeded")

	return reply, nil
}
