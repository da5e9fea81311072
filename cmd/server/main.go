package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/handler"
	"github.com/MKhiriev/go-code-tutor/internal/llm"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/server"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/store"
	"github.com/MKhiriev/go-code-tutor/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("code-tutor-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeStorages(storages, log)

	model, err := llm.NewGeminiModel(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating model client")
	}

	services, err := service.NewServices(storages, model, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	background := workers.NewWorkers(workers.NewLimiterJanitor(services.Limiter, cfg.Workers, log))
	background.Run(ctx)
	defer background.Wait()

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	stop()
}

func closeStorages(storages *store.Storages, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := storages.Close(ctx); err != nil {
		log.Err(err).Msg("error closing storages")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
