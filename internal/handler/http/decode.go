package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/soul-scribe/internal/app"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/models"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// timestampLayout formats date_joined and mood timestamps. Sub-second
// precision is kept so entries logged in the same second stay distinct.
const timestampLayout = time.RFC3339Nano

// decodeJSON reads the body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// currentUser returns the user placed in the context by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, app.MsgAuthenticationRequired)
		return models.User{}, false
	}
	return user, true
}
