package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/internal/utils"
)

// errorStatuses is checked in order; the first sentinel matched by
// errors.Is decides the status, so credential errors precede store ones.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrAuthenticationRequired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},
	{service.ErrServerMisconfigured, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrPasswordHashing, http.StatusInternalServerError},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrEncodingProfile, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},

	{adapter.ErrUpstreamStatus, http.StatusInternalServerError},
	{adapter.ErrUpstreamUnavailable, http.StatusInternalServerError},
	{adapter.ErrMalformedUpstreamResponse, http.StatusInternalServerError},

	{ErrRateLimited, http.StatusTooManyRequests},
	{ErrNoUserInContext, http.StatusUnauthorized},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status from errorStatuses and
// the fixed client message msg. err itself never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	if msg == "" {
		msg = app.MsgInternalServerError
	}
	utils.WriteMessage(w, msg, status)
}
