package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/utils"
)

// chatRateLimitPrefix namespaces chat counters from other limiter keys.
const chatRateLimitPrefix = "chat:"

// withChatRateLimit answers 429 once the authenticated user exhausts the
// chat window. It must run after auth. Limiter failures let the request
// through.
func (h *Handler) withChatRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserInContext, app.MsgAuthenticationRequired)
			return
		}

		allowed, err := h.limiter.Allow(r.Context(), chatRateLimitPrefix+strconv.FormatInt(user.UserID, 10))
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Int64("user_id", user.UserID).Msg("rate limiter unavailable, request allowed")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			writeError(w, r, ErrRateLimited, app.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
