package http

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler serves the browser UI. All page requests share one session, so
// they are serialized on mu.
type Handler struct {
	services *service.Services

	mu      sync.Mutex
	session *service.Session

	page    *template.Template
	metrics http.Handler
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		session:  services.NewSession(),
		page:     pageTemplate,
		metrics:  metrics.Handler(gatherer),
		traceID:  utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
