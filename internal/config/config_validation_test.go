package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *StructuredConfig) {}},
		{
			name:    "unknown token mode",
			mutate:  func(c *StructuredConfig) { c.App.TokenMode = "opaque" },
			wantErr: ErrInvalidTokenMode,
		},
		{
			name:    "jwt without key",
			mutate:  func(c *StructuredConfig) { c.App.TokenMode = TokenModeJWT },
			wantErr: ErrEmptyTokenSignKey,
		},
		{
			name: "jwt with key",
			mutate: func(c *StructuredConfig) {
				c.App.TokenMode = TokenModeJWT
				c.App.TokenSignKey = "secret"
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidDBDriver,
		},
		{
			name:    "request timeout shorter than chat timeout",
			mutate:  func(c *StructuredConfig) { c.Server.RequestTimeout = 10 * time.Second },
			wantErr: ErrInvalidTimeouts,
		},
		{
			name:    "relative base url",
			mutate:  func(c *StructuredConfig) { c.Adapter.Chat.BaseURL = "/api/v1" },
			wantErr: ErrInvalidChatBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyDefaults_NegativeRetryDisables(t *testing.T) {
	cfg := minimalConfig()
	cfg.Adapter.Chat.RetryCount = -1
	cfg.applyDefaults()
	assert.Equal(t, 0, cfg.Adapter.Chat.RetryCount)
}
