// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer credential issued at login.
//
// For signed tokens RegisteredClaims carries the standard claim set and
// SignedString the compact JWS form. For compatibility tokens only
// SignedString and UserID are populated.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the credential exactly as the client must send it
	// after the "Bearer " scheme.
	SignedString string `json:"-"`

	// UserID is the identity the credential asserts.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the credential string. It implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}
