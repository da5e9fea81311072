package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/handler"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
)

type server struct {
	transports []transport

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer builds a server for every handler enabled in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.transports = append(servers.transports, g)
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until a stop signal arrives or a transport fails.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports {
			t.Shutdown()
		}
	})
}

// run serves every transport until ctx is done or one of them fails, then
// shuts all of them down and waits for them to return.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	errCh := make(chan error, len(s.transports))
	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := t.Serve(); err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
	}

	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
