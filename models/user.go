// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the wellness companion.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Username is the unique login chosen at registration.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// ProfileData holds user-declared preferences such as the preferred
	// coping mechanism. Never nil for users read from storage.
	ProfileData Profile `json:"profile_data"`

	// DateJoined is the moment the account was created.
	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body accepted by the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
