package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
	"github.com/MKhiriev/go-review-fetcher/models"
)

type searchKey struct {
	query string
	limit int
}

// searchCache memoizes store searches. Failed searches are not stored, so
// they are retried on the next call.
type searchCache struct {
	store     adapter.StoreAdapter
	validator validators.Validator
	metrics   metrics.MetricsCollector

	locale string
	region string
	limit  int

	mu      sync.Mutex
	entries map[searchKey][]models.AppListing

	logger *logger.Logger
}

func NewSearchService(
	cfg config.ClientApp,
	store adapter.StoreAdapter,
	validator validators.Validator,
	collector metrics.MetricsCollector,
	logger *logger.Logger,
) SearchService {
	return &searchCache{
		store:     store,
		validator: validator,
		metrics:   collector,
		locale:    cfg.Locale,
		region:    cfg.SearchRegion,
		limit:     cfg.SearchLimit,
		entries:   make(map[searchKey][]models.AppListing),
		logger:    logger,
	}
}

func (s *searchCache) Search(ctx context.Context, query string) ([]models.AppListing, error) {
	req := models.SearchRequest{
		Query:  strings.TrimSpace(query),
		Locale: s.locale,
		Region: s.region,
		Limit:  s.limit,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	key := searchKey{query: req.Query, limit: req.Limit}

	s.mu.Lock()
	cached, ok := s.entries[key]
	s.mu.Unlock()
	if ok {
		s.metrics.RecordCacheHit()
		return slices.Clone(cached), nil
	}
	s.metrics.RecordCacheMiss()

	start := time.Now()
	listings, err := s.store.Search(ctx, req)
	if err != nil {
		s.metrics.RecordUpstreamCall(metrics.OperationSearch, metrics.OutcomeFailure, time.Since(start))
		s.logger.Err(err).Str("query", req.Query).Msg("search failed")
		return nil, fmt.Errorf("search %q: %w", req.Query, err)
	}
	s.metrics.RecordUpstreamCall(metrics.OperationSearch, metrics.OutcomeSuccess, time.Since(start))

	if listings == nil {
		listings = []models.AppListing{}
	}

	s.mu.Lock()
	s.entries[key] = slices.Clone(listings)
	s.mu.Unlock()

	return listings, nil
}

func (s *searchCache) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
}

func (s *searchCache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
