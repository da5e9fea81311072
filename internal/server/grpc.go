package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	myGRPC "github.com/MKhiriev/go-code-tutor/internal/handler/grpc"
	"github.com/MKhiriev/go-code-tutor/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

// newGRPCServer binds the listener eagerly so address errors surface at
// startup.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(s)

	return &grpcServer{
		handler:  handler,
		server:   s,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) Serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING to health probes before draining.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
