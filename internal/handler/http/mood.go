package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/internal/validators"
	"github.com/MKhiriev/soul-scribe/models"
)

func (h *Handler) logMood(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.MoodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.services.MoodService.LogMood(r.Context(), user, req.Mood)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyMood):
			writeError(w, r, err, app.MsgMoodRequired)
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, r, err, app.MsgInvalidMood)
		default:
			writeError(w, r, err, app.MsgMoodLogFailed)
		}
		return
	}

	utils.WriteJSON(w, models.MoodResponse{
		Message: app.MsgMoodLogged,
		Mood:    entry.MoodName,
	}, http.StatusCreated)
}

// getMoodHistory returns every entry oldest first. An empty log is "[]".
func (h *Handler) getMoodHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	entries, err := h.services.MoodService.GetMoodHistory(r.Context(), user)
	if err != nil {
		writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	history := make([]models.MoodHistoryItem, 0, len(entries))
	for _, e := range entries {
		history = append(history, models.MoodHistoryItem{
			MoodName:  e.MoodName,
			Timestamp: e.Timestamp.UTC().Format(timestampLayout),
		})
	}

	utils.WriteJSON(w, history, http.StatusOK)
}
