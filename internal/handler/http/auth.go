package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, r, err, app.MsgCredentialsRequired)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			writeError(w, r, err, app.MsgUsernameExists)
		default:
			writeError(w, r, err, app.MsgRegistrationFailed)
		}
		return
	}

	log.Debug().Int64("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, r, err, app.MsgCredentialsRequired)
		case errors.Is(err, service.ErrWrongPassword):
			writeError(w, r, err, app.MsgInvalidCredentials)
		default:
			writeError(w, r, err, app.MsgInternalServerError)
		}
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message:  app.MsgLoginSuccessful,
		Token:    token.SignedString,
		Username: foundUser.Username,
		UserID:   foundUser.UserID,
	}, http.StatusOK)
}
