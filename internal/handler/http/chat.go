package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/models"
)

// chat relays one message to the AI companion. A missing API key and every
// upstream failure kind produce the same client response; the kind is only
// logged.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.services.ChatService.Chat(r.Context(), user, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, r, err, app.MsgMessageRequired)
		default:
			writeError(w, r, err, app.MsgAIFailed)
		}
		return
	}

	utils.WriteJSON(w, models.ChatResponse{
		Message: app.MsgAIResponse,
		Reply:   reply,
	}, http.StatusOK)
}
