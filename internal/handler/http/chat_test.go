package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestChat_Success(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.expectAuthenticated()
	m.chat.EXPECT().Chat(gomock.Any(), testUser, "I feel tired").Return("That sounds hard.", nil)

	rec := serve(h, http.MethodPost, "/api/chat", `{"message":"I feel tired"}`, authorized())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "AI response received!", "reply": "That sounds hard."}, decodeBody(t, rec))
}

func TestChat_EmptyMessage(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.expectAuthenticated()
	m.chat.EXPECT().Chat(gomock.Any(), gomock.Any(), "").Return("", service.ErrInvalidDataProvided)

	rec := serve(h, http.MethodPost, "/api/chat", `{}`, authorized())
	assertMessage(t, rec, http.StatusBadRequest, "Message content is required.")
}

func TestChat_UpstreamFailuresLookTheSame(t *testing.T) {
	failures := map[string]error{
		"status 500":   fmt.Errorf("%w: status 500", adapter.ErrUpstreamStatus),
		"timeout":      fmt.Errorf("%w: context deadline exceeded", adapter.ErrUpstreamUnavailable),
		"malformed":    adapter.ErrMalformedUpstreamResponse,
		"unclassified": errors.New("something else"),
		"missing key":  service.ErrServerMisconfigured,
	}

	var bodies []string
	for name, upstreamErr := range failures {
		t.Run(name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			m.expectAuthenticated()
			m.chat.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any()).Return("", upstreamErr)

			rec := serve(h, http.MethodPost, "/api/chat", `{"message":"hi"}`, authorized())
			assertMessage(t, rec, http.StatusInternalServerError, "Failed to get response from AI.")
			bodies = append(bodies, rec.Body.String())
		})
	}

	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}

func TestChat_MissingKeyGivesNoConfigHint(t *testing.T) {
	respond := func(chatErr error) *httptest.ResponseRecorder {
		h, m := newTestHandler(t, nil)
		m.expectAuthenticated()
		m.chat.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any()).Return("", chatErr)
		return serve(h, http.MethodPost, "/api/chat", `{"message":"hi"}`, authorized())
	}

	missingKey := respond(service.ErrServerMisconfigured)
	upstream := respond(fmt.Errorf("%w: http 500", adapter.ErrUpstreamStatus))

	assert.Equal(t, upstream.Code, missingKey.Code)
	assert.Equal(t, upstream.Body.String(), missingKey.Body.String())
	assert.NotContains(t, missingKey.Body.String(), "key")
}

func TestChat_RateLimited(t *testing.T) {
	limiter := &stubLimiter{allowed: false}
	h, m := newTestHandler(t, limiter)
	m.expectAuthenticated()
	m.chat.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := serve(h, http.MethodPost, "/api/chat", `{"message":"hi"}`, authorized())

	assertMessage(t, rec, http.StatusTooManyRequests, "Too many requests.")
	assert.Equal(t, []string{"chat:1"}, limiter.keys)
}

func TestChat_LimiterFailureFailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis: connection refused")}
	h, m := newTestHandler(t, limiter)
	m.expectAuthenticated()
	m.chat.EXPECT().Chat(gomock.Any(), gomock.Any(), "hi").Return("hello", nil)

	rec := serve(h, http.MethodPost, "/api/chat", `{"message":"hi"}`, authorized())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChat_LimiterAllows(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	h, m := newTestHandler(t, limiter)
	m.expectAuthenticated()
	m.chat.EXPECT().Chat(gomock.Any(), gomock.Any(), "hi").Return("hello", nil)

	rec := serve(h, http.MethodPost, "/api/chat", `{"message":"hi"}`, authorized())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_NotAppliedToOtherRoutes(t *testing.T) {
	limiter := &stubLimiter{allowed: false}
	h, m := newTestHandler(t, limiter)
	m.expectAuthenticated()
	m.mood.EXPECT().GetMoodHistory(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/mood/history", "", authorized())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, limiter.keys)
}
