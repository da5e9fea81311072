// Package grpc implements the gRPC transport of the code-tutor server. It
// serves the standard health service so orchestrators can probe the
// process, reports the chat service as serving while its dependencies are
// wired, and logs every call with a trace id.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ChatServiceName is the health-check service name of the chat endpoint.
const ChatServiceName = "codetutor.Chat"

const traceIDMetadataKey = "x-trace-id"

var traceIDs = utils.NewUUIDGenerator()

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The overall status is SERVING; the chat
// service is SERVING only when a chat service is wired.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	chatStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if services != nil && services.ChatService != nil {
		chatStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ChatServiceName, chatStatus)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Shutdown flips every service to NOT_SERVING so probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor attaches a request-scoped logger carrying the
// caller's x-trace-id (or a generated one) and logs each call's status code
// and duration.
func (h *Handler) UnaryLoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(traceIDMetadataKey); len(vals) > 0 {
			traceID = vals[0]
		}
	}
	if traceID == "" {
		traceID = traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = context.WithValue(l.WithContext(ctx), utils.TraceIDCtxKey, traceID)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
