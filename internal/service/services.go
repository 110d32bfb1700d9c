package service

import (
	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
	"github.com/MKhiriev/go-review-fetcher/models"
)

// Services bundles the use cases shared by both front ends.
type Services struct {
	SearchService  SearchService
	ReviewService  ReviewService
	Exporter       Exporter
	AppInfoService AppInfoService
	Validator      validators.Validator

	previewRows int
	logger      *logger.Logger
}

func NewServices(
	cfg config.ClientApp,
	store adapter.StoreAdapter,
	buildInfo models.AppBuildInfo,
	collector metrics.MetricsCollector,
	logger *logger.Logger,
) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		SearchService:  NewSearchService(cfg, store, validator, collector, logger),
		ReviewService:  NewReviewService(cfg.Locale, store, validator, collector, logger),
		Exporter:       NewCSVExporter(collector, logger),
		AppInfoService: NewAppInfoService(buildInfo),
		Validator:      validator,
		previewRows:    cfg.PreviewRows,
		logger:         logger,
	}
}

// NewSession starts an interactive session on the shared services. Sessions
// started from the same Services share one search cache.
func (s *Services) NewSession() *Session {
	return NewSession(
		SessionConfig{PreviewRows: s.previewRows},
		s.SearchService,
		s.ReviewService,
		s.Exporter,
		s.Validator,
		s.logger,
	)
}
