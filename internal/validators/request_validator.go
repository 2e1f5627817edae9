package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/soul-scribe/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldMood        = "mood"
	FieldMessage     = "message"
	FieldProfileData = "profile_data"
)

// RequestValidator validates inbound API payloads.
type RequestValidator struct{}

// NewRequestValidator returns a [Validator] for models.Credentials,
// models.MoodRequest, models.ChatRequest and models.ProfileUpdate.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.MoodRequest:
		return v.validateMood(value.Mood)
	case *models.MoodRequest:
		return v.validateMood(value.Mood)
	case models.Mood:
		return v.validateMood(value)

	case models.ChatRequest:
		return v.validateMessage(value.Message)
	case *models.ChatRequest:
		return v.validateMessage(value.Message)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if c.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateMood(mood models.Mood) error {
	if mood == "" {
		return ErrEmptyMood
	}
	if !mood.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownMood, mood)
	}
	return nil
}

func (v *RequestValidator) validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// validateProfileUpdate accepts only a JSON object. null, arrays, strings and
// numbers are rejected.
func (v *RequestValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	raw := bytes.TrimSpace(update.ProfileData)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ErrEmptyProfileData
	}
	if raw[0] != '{' {
		return ErrProfileNotObject
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("%w: %w", ErrProfileNotObject, err)
	}
	return nil
}
