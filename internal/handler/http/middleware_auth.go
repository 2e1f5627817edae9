package http

import (
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/utils"
)

// auth resolves the "Authorization" header through
// [service.AuthService.Authenticate] and stores the user in the request
// context under [utils.UserCtxKey]. Any failure is answered with 401 and
// the same message, whatever the reason.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
		if !ok {
			logger.FromRequest(r).Debug().Err(service.ErrAuthenticationRequired).Str("uri", r.RequestURI).Send()
			utils.WriteMessage(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
