package http

import (
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/service"
)

// Handler is the root HTTP transport handler.
type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration
	maxCodeLines   int

	metrics *metrics

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Server settings configure CORS and the
// request deadline; limits are echoed in error hints.
func NewHandler(services *service.Services, cfg config.Server, limits config.Limits, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		maxCodeLines:   limits.MaxCodeLines,
		metrics:        newMetrics(),
		logger:         logger,
	}
}
