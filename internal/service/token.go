// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/models"
)

// DummyTokenPrefix precedes the decimal user id in compatibility tokens.
const DummyTokenPrefix = "dummy_token_user_id_"

// NewTokenIssuer returns the issuer selected by cfg.TokenMode.
func NewTokenIssuer(cfg config.App) TokenIssuer {
	if cfg.TokenMode == config.TokenModeJWT {
		return &jwtTokenIssuer{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			duration: cfg.TokenDuration,
		}
	}
	return dummyTokenIssuer{}
}

// dummyTokenIssuer produces "dummy_token_user_id_<id>" credentials: no
// signature, no expiry, no revocation. Existing clients depend on the format.
type dummyTokenIssuer struct{}

func (dummyTokenIssuer) Issue(user models.User) (models.Token, error) {
	return models.Token{
		SignedString: DummyTokenPrefix + strconv.FormatInt(user.UserID, 10),
		UserID:       user.UserID,
	}, nil
}

// Parse accepts only the exact prefix followed by ASCII digits.
func (dummyTokenIssuer) Parse(credential string) (int64, error) {
	digits, found := strings.CutPrefix(credential, DummyTokenPrefix)
	if !found || digits == "" {
		return 0, ErrTokenIsInvalid
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, ErrTokenIsInvalid
		}
	}

	userID, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	return userID, nil
}

// jwtTokenIssuer produces HS256 JWTs with iss, sub, iat and exp claims.
type jwtTokenIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func (j *jwtTokenIssuer) Issue(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(j.issuer, user.UserID, j.duration, j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (j *jwtTokenIssuer) Parse(credential string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(credential, j.signKey, j.issuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	return token.UserID, nil
}
