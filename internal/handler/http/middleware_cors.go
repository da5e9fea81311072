package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS answers preflight requests and sets CORS headers for browser
// clients. An empty origin list allows any origin.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         600,
	}).Handler
}
