// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors the JSON file layout. Durations are written as Go
// duration strings ("30s", "24h").
type jsonConfig struct {
	ServerAddress  string `json:"server_address"`
	RequestTimeout string `json:"request_timeout"`

	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`

	TokenMode     string `json:"token_mode"`
	TokenSignKey  string `json:"token_sign_key"`
	TokenIssuer   string `json:"token_issuer"`
	TokenDuration string `json:"token_duration"`
	LogLevel      string `json:"log_level"`

	ChatAPIKey     string `json:"chat_api_key"`
	ChatBaseURL    string `json:"chat_base_url"`
	ChatModel      string `json:"chat_model"`
	ChatReferer    string `json:"chat_referer"`
	ChatTitle      string `json:"chat_title"`
	ChatTimeout    string `json:"chat_timeout"`
	ChatRetryCount int    `json:"chat_retry_count"`

	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	ChatLimit     int    `json:"chat_limit"`
	ChatWindow    string `json:"chat_window"`
}

// parseJSON reads the file at path and converts it into a StructuredConfig.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingJSONConfig, err)
	}

	var jc jsonConfig
	if err = json.Unmarshal(raw, &jc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalJSONConfig, err)
	}

	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = jc.ServerAddress
	cfg.Storage.DB.Driver = jc.DatabaseDriver
	cfg.Storage.DB.DSN = jc.DatabaseDSN
	cfg.App.TokenMode = jc.TokenMode
	cfg.App.TokenSignKey = jc.TokenSignKey
	cfg.App.TokenIssuer = jc.TokenIssuer
	cfg.App.LogLevel = jc.LogLevel
	cfg.Adapter.Chat.APIKey = jc.ChatAPIKey
	cfg.Adapter.Chat.BaseURL = jc.ChatBaseURL
	cfg.Adapter.Chat.Model = jc.ChatModel
	cfg.Adapter.Chat.Referer = jc.ChatReferer
	cfg.Adapter.Chat.Title = jc.ChatTitle
	cfg.Adapter.Chat.RetryCount = jc.ChatRetryCount
	cfg.Limiter.RedisAddr = jc.RedisAddr
	cfg.Limiter.RedisPassword = jc.RedisPassword
	cfg.Limiter.ChatLimit = jc.ChatLimit

	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"request_timeout", jc.RequestTimeout, &cfg.Server.RequestTimeout},
		{"token_duration", jc.TokenDuration, &cfg.App.TokenDuration},
		{"chat_timeout", jc.ChatTimeout, &cfg.Adapter.Chat.Timeout},
		{"chat_window", jc.ChatWindow, &cfg.Limiter.ChatWindow},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, parseErr := time.ParseDuration(d.value)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDuration, d.name, parseErr)
		}
		*d.dst = parsed
	}

	return cfg, nil
}
