// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services soul-scribe
// depends on.
//
// The primary abstraction is [ChatAdapter], which hides the OpenAI-compatible
// chat-completions protocol from the service layer. The shipped
// implementation ([NewChatAdapter]) talks HTTP through resty and is guarded by
// a circuit breaker.
//
// Failures are reported with the sentinel values in errors.go so callers can
// use [errors.Is] without knowing transport details: [ErrUpstreamStatus] for a
// non-2xx reply, [ErrUpstreamUnavailable] for transport failures and an open
// breaker, [ErrMalformedUpstreamResponse] for an unexpected body.
package adapter

import (
	"context"

	"github.com/MKhiriev/soul-scribe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ChatAdapter sends one conversation to the upstream chat-completions API.
type ChatAdapter interface {
	// Complete posts messages in order and returns the content of the first
	// completion choice verbatim.
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}
