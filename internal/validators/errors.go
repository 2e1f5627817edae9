package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyMood        = errors.New("mood is required")
	ErrUnknownMood      = errors.New("mood is not in the vocabulary")
	ErrEmptyMessage     = errors.New("message is required")
	ErrEmptyProfileData = errors.New("profile_data is required")
	ErrProfileNotObject = errors.New("profile_data must be a JSON object")
)
