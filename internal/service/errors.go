package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrAuthenticationRequired = errors.New("authentication required")
	ErrTokenCreationFailed    = errors.New("token creation failed")
	ErrTokenIsInvalid         = errors.New("token is invalid")

	// ErrServerMisconfigured is returned by chat when no upstream API key is
	// configured.
	ErrServerMisconfigured = errors.New("server is misconfigured")

	ErrPasswordHashing = errors.New("password hashing failed")
)
