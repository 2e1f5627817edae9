package config

import "errors"

var (
	ErrReadingJSONConfig   = errors.New("error reading JSON config file")
	ErrUnmarshalJSONConfig = errors.New("error unmarshalling JSON config")
	ErrInvalidDuration     = errors.New("invalid duration value")

	ErrInvalidTokenMode   = errors.New("token mode must be \"dummy\" or \"jwt\"")
	ErrEmptyTokenSignKey  = errors.New("token sign key is required in jwt mode")
	ErrInvalidDBDriver    = errors.New("database driver must be \"pgx\" or \"sqlite3\"")
	ErrEmptyDSN           = errors.New("database DSN is empty")
	ErrInvalidTimeouts    = errors.New("request timeout must exceed chat API timeout")
	ErrInvalidChatLimit   = errors.New("chat limit must be positive")
	ErrInvalidChatBaseURL = errors.New("chat API base URL is invalid")
)
