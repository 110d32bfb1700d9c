package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
	"github.com/MKhiriev/go-review-fetcher/models"
)

type reviewService struct {
	store     adapter.StoreAdapter
	validator validators.Validator
	metrics   metrics.MetricsCollector
	locale    string

	logger *logger.Logger
}

func NewReviewService(
	locale string,
	store adapter.StoreAdapter,
	validator validators.Validator,
	collector metrics.MetricsCollector,
	logger *logger.Logger,
) ReviewService {
	return &reviewService{
		store:     store,
		validator: validator,
		metrics:   collector,
		locale:    locale,
		logger:    logger,
	}
}

// Fetch requests the newest req.Count reviews of req.AppID in req.Region.
// Validation and upstream failures are logged and returned in the result.
func (s *reviewService) Fetch(ctx context.Context, req models.FetchRequest) models.FetchResult {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.FetchResult{Err: err}
	}

	log := s.logger.With().
		Str("app_id", req.AppID).
		Str("region", string(req.Region)).
		Int("count", req.Count).
		Logger()

	start := time.Now()
	reviews, err := s.store.Reviews(ctx, models.ReviewsRequest{
		AppID:  req.AppID,
		Locale: s.locale,
		Region: req.Region.StoreCode(),
		Count:  req.Count,
		Sort:   models.SortNewest,
	})
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.RecordUpstreamCall(metrics.OperationReviews, metrics.OutcomeFailure, elapsed)
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("fetch reviews failed")
		return models.FetchResult{Err: err}
	}

	s.metrics.RecordUpstreamCall(metrics.OperationReviews, metrics.OutcomeSuccess, elapsed)
	s.metrics.RecordReviewsFetched(len(reviews))
	log.Info().Int("fetched", len(reviews)).Dur("elapsed", elapsed).Msg("reviews fetched")

	if reviews == nil {
		reviews = []models.Review{}
	}
	return models.FetchResult{Reviews: reviews}
}
