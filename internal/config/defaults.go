// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields left unset by every source.
const (
	DefaultHTTPAddress    = ":5000"
	DefaultRequestTimeout = 60 * time.Second

	DefaultTokenMode     = TokenModeDummy
	DefaultTokenIssuer   = "soul-scribe"
	DefaultTokenDuration = 24 * time.Hour

	DefaultDBDriver = DriverPostgres

	DefaultChatBaseURL    = "https://openrouter.ai/api/v1"
	DefaultChatModel      = "deepseek/deepseek-r1:free"
	DefaultChatReferer    = "http://127.0.0.1:3000"
	DefaultChatTitle      = "SoulScribe"
	DefaultChatTimeout    = 30 * time.Second
	DefaultChatRetryCount = 2

	DefaultChatLimit  = 20
	DefaultChatWindow = time.Minute
)

// applyDefaults fills zero-valued fields with the package defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.App.TokenMode == "" {
		cfg.App.TokenMode = DefaultTokenMode
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}

	chat := &cfg.Adapter.Chat
	if chat.APIKey == "" {
		chat.APIKey = cfg.LegacyChatAPIKey
	}
	if chat.BaseURL == "" {
		chat.BaseURL = DefaultChatBaseURL
	}
	if chat.Model == "" {
		chat.Model = DefaultChatModel
	}
	if chat.Referer == "" {
		chat.Referer = DefaultChatReferer
	}
	if chat.Title == "" {
		chat.Title = DefaultChatTitle
	}
	if chat.Timeout == 0 {
		chat.Timeout = DefaultChatTimeout
	}
	if chat.RetryCount == 0 {
		chat.RetryCount = DefaultChatRetryCount
	}
	if chat.RetryCount < 0 {
		chat.RetryCount = 0
	}

	if cfg.Limiter.ChatLimit == 0 {
		cfg.Limiter.ChatLimit = DefaultChatLimit
	}
	if cfg.Limiter.ChatWindow == 0 {
		cfg.Limiter.ChatWindow = DefaultChatWindow
	}
}
