package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/client"
	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/internal/tui"
	"github.com/MKhiriev/go-review-fetcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("review-fetcher-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	store, err := adapter.NewGooglePlayAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create store adapter")
	}

	services := service.NewServices(cfg.App, store, buildInfo, metrics.Nop(), log)

	ui, err := tui.New(services, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Println(err)
	}
}
