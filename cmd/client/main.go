package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-code-tutor/internal/adapter"
	"github.com/MKhiriev/go-code-tutor/internal/client"
	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/store"
	"github.com/MKhiriev/go-code-tutor/internal/tui"
	"github.com/MKhiriev/go-code-tutor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "code-tutor: %v\n", err)
		os.Exit(1)
	}
}

// run keeps deferred cleanup reachable; main exits only after it returns.
func run() error {
	log, closer := logger.NewClientLogger("code-tutor-client", os.Getenv("CLIENT_LOG_FILE"))
	defer closer.Close()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("error closing local storage")
		}
	}()

	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services := service.NewClientServices(localStorage, serverAdapter, log)
	ui := tui.New(services, buildInfo, log.WithComponent("tui"))

	log.Info().Str("server", cfg.Adapter.HTTPAddress).Msg("client started")

	return client.NewApp(services, ui, log).Run(ctx)
}
