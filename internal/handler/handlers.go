package handler

import (
	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/handler/http"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{HTTP: http.NewHandler(services, gatherer, logger)}, nil
}
