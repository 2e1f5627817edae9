package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS lets the separately served browser frontend call the API from
// any origin. Preflight requests stop here and never reach auth.
func withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
