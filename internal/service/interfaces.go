// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the review fetcher's use cases on top of the
// store adapter: memoized search, review fetching, row projections, CSV
// export and the interactive [Session] that both front ends drive.
package service

import (
	"context"

	"github.com/MKhiriev/go-review-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SearchService resolves a free-text app name to store listings.
type SearchService interface {
	// Search returns the listings for query. Results of successful calls,
	// empty ones included, are memoized for the lifetime of the service.
	Search(ctx context.Context, query string) ([]models.AppListing, error)

	// Clear drops every memoized result.
	Clear()

	// Len reports how many queries are memoized.
	Len() int
}

// ReviewService fetches reviews for a single app.
type ReviewService interface {
	// Fetch never returns an error directly: a failed upstream call is
	// carried in [models.FetchResult.Err].
	Fetch(ctx context.Context, req models.FetchRequest) models.FetchResult
}

// Exporter turns export rows into a downloadable file.
type Exporter interface {
	Export(appID string, rows []models.ExportRow) (models.ExportFile, error)

	// Save writes file into dir and returns the full path.
	Save(dir string, file models.ExportFile) (string, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
