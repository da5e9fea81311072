package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	POST /register      public
//	POST /login         public
//	POST /chat          bearer token required, gzip aware
//	GET  /api/version   public
//	GET  /metrics       Prometheus exposition
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth)
		r.Post("/chat", h.chat)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
