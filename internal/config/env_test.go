// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":           "/path/to/config.json",
		"DEEPSEEK_API_KEY": "legacy_key",

		"APP_TOKEN_MODE":     "jwt",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_LOG_LEVEL":      "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "45s",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:soul.db",

		"ADAPTER_CHAT_API_KEY":     "key",
		"ADAPTER_CHAT_BASE_URL":    "http://upstream",
		"ADAPTER_CHAT_MODEL":       "m",
		"ADAPTER_CHAT_REFERER":     "http://ref",
		"ADAPTER_CHAT_TITLE":       "T",
		"ADAPTER_CHAT_TIMEOUT":     "5s",
		"ADAPTER_CHAT_RETRY_COUNT": "3",

		"LIMITER_REDIS_ADDR":     "localhost:6379",
		"LIMITER_REDIS_PASSWORD": "pw",
		"LIMITER_CHAT_LIMIT":     "7",
		"LIMITER_CHAT_WINDOW":    "2m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "legacy_key", cfg.LegacyChatAPIKey)

	assert.Equal(t, "jwt", cfg.App.TokenMode)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:soul.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "key", cfg.Adapter.Chat.APIKey)
	assert.Equal(t, "http://upstream", cfg.Adapter.Chat.BaseURL)
	assert.Equal(t, "m", cfg.Adapter.Chat.Model)
	assert.Equal(t, "http://ref", cfg.Adapter.Chat.Referer)
	assert.Equal(t, "T", cfg.Adapter.Chat.Title)
	assert.Equal(t, 5*time.Second, cfg.Adapter.Chat.Timeout)
	assert.Equal(t, 3, cfg.Adapter.Chat.RetryCount)

	assert.Equal(t, "localhost:6379", cfg.Limiter.RedisAddr)
	assert.Equal(t, "pw", cfg.Limiter.RedisPassword)
	assert.Equal(t, 7, cfg.Limiter.ChatLimit)
	assert.Equal(t, 2*time.Minute, cfg.Limiter.ChatWindow)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_CHAT_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
