// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/utils"
)

const (
	searchPath        = "/store/search"
	batchExecutePath  = "/_/PlayStoreUi/data/batchexecute"
	searchDatasetKey  = "ds:4"
	reviewsRPCID      = "UsvDTd"
	maxReviewsPerPage = 199
)

type googlePlayAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewGooglePlayAdapter returns a [StoreAdapter] talking to the store front at
// cfg.BaseURL. Returns an error if the base URL is empty or unparsable.
func NewGooglePlayAdapter(cfg config.ClientAdapter, log *logger.Logger) (StoreAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store base url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
	})

	return &googlePlayAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
