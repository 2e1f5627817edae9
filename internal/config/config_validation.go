// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
)

// validate checks a merged and defaulted configuration. All problems are
// reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.App.TokenMode {
	case TokenModeDummy:
	case TokenModeJWT:
		if cfg.App.TokenSignKey == "" {
			errs = append(errs, ErrEmptyTokenSignKey)
		}
	default:
		errs = append(errs, ErrInvalidTokenMode)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, ErrInvalidDBDriver)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrEmptyDSN)
	}

	if cfg.Server.RequestTimeout <= cfg.Adapter.Chat.Timeout {
		errs = append(errs, ErrInvalidTimeouts)
	}

	if u, err := url.Parse(cfg.Adapter.Chat.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ErrInvalidChatBaseURL)
	}

	if cfg.Limiter.ChatLimit < 0 {
		errs = append(errs, ErrInvalidChatLimit)
	}

	return errors.Join(errs...)
}
