package http

import (
	"net/http"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Message: app.MsgBackendRunning,
	}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
