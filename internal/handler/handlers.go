// Package handler builds the transport handlers enabled by configuration.
package handler

import (
	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/handler/grpc"
	"github.com/MKhiriev/go-code-tutor/internal/handler/http"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/service"
)

// Handlers holds the transport handlers. A nil field means the transport is
// disabled because its address is not configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Server, cfg.Limits, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
