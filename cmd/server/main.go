package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/handler"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/server"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("review-fetcher-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	store, err := adapter.NewGooglePlayAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store adapter")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services := service.NewServices(cfg.App, store, buildInfo, metrics.NewCollector(registry), log)

	handlers, err := handler.NewHandlers(services, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
