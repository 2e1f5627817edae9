package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"duplicate username", fmt.Errorf("%w: %w", store.ErrUsernameAlreadyExists, errors.New("23505")), http.StatusConflict},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests},
		{"upstream", adapter.ErrUpstreamUnavailable, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_CredentialErrorWinsOverStoreError(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrWrongPassword, store.ErrNoUserWasFound)

	for range 1000 {
		if got := statusFromError(err); got != http.StatusUnauthorized {
			t.Fatalf("statusFromError() = %d, want %d", got, http.StatusUnauthorized)
		}
	}
}
