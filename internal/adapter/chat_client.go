package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/models"
)

const chatCompletionsPath = "/chat/completions"

type chatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []models.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatAdapter struct {
	client  *resty.Client
	cb      *gobreaker.CircuitBreaker
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

// NewChatAdapter builds a [ChatAdapter] for the chat-completions API in cfg.
//
// Transport failures are retried cfg.RetryCount times; non-2xx replies and
// malformed bodies are returned at once. cfg.Timeout bounds the whole call,
// retries and backoff included. After five consecutive upstream
// failures the breaker opens for 30 seconds and calls fail fast with
// [ErrUpstreamUnavailable].
func NewChatAdapter(cfg config.ChatAPI, log *logger.Logger) ChatAdapter {
	return newChatAdapter(cfg, log, defaultBreakerSettings(log))
}

func defaultBreakerSettings(log *logger.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "ChatCompletions",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}
}

func newChatAdapter(cfg config.ChatAPI, log *logger.Logger, st gobreaker.Settings) *chatAdapter {
	// malformed bodies and client cancellations say nothing about upstream health
	st.IsSuccessful = func(err error) bool {
		return err == nil ||
			errors.Is(err, ErrMalformedUpstreamResponse) ||
			errors.Is(err, context.Canceled)
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("HTTP-Referer", cfg.Referer).
		SetHeader("X-Title", cfg.Title).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetLogger(newRestyLogger(log)).
		AddRetryHook(func(resp *resty.Response, err error) {
			log.Warn().Err(err).Str("func", "chatAdapter.retry").Msg("retrying chat completion after transport failure")
		})

	return &chatAdapter{
		client:  client,
		cb:      gobreaker.NewCircuitBreaker(st),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  log,
	}
}

// Complete implements [ChatAdapter].
func (a *chatAdapter) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	res, err := a.cb.Execute(func() (any, error) {
		return a.send(ctx, messages)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if err != nil {
		return "", err
	}

	return res.(string), nil
}

func (a *chatAdapter) send(ctx context.Context, messages []models.ChatMessage) (string, error) {
	log := logger.FromContext(ctx)

	started := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{Model: a.model, Messages: messages}).
		Post(chatCompletionsPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, ctxErr)
		}
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	log.Debug().
		Str("func", "chatAdapter.send").
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("chat completion responded")

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return parseCompletion(resp.Body())
}

// parseCompletion extracts choices[0].message.content from body.
func parseCompletion(body []byte) (string, error) {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedUpstreamResponse, err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedUpstreamResponse)
	}

	content := parsed.Choices[0].Message.Content
	if content == nil {
		return "", fmt.Errorf("%w: choice has no message content", ErrMalformedUpstreamResponse)
	}

	return *content, nil
}
