package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	found, err := h.services.ProfileService.GetProfile(r.Context(), user)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Username:    found.Username,
		ProfileData: found.ProfileData,
		DateJoined:  found.DateJoined.UTC().Format(timestampLayout),
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	merged, err := h.services.ProfileService.UpdateProfile(r.Context(), user, update)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, r, err, app.MsgInvalidProfileData)
			return
		}
		writeError(w, r, err, app.MsgProfileUpdateFailed)
		return
	}

	utils.WriteJSON(w, models.ProfileUpdateResponse{
		Message:     app.MsgProfileUpdated,
		ProfileData: merged,
	}, http.StatusOK)
}
