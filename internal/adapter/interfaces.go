// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the Google Play store front.
//
// [StoreAdapter] decouples the service layer from the store's undocumented
// wire formats: the HTML search page and the batchexecute RPC that serves
// reviews. Transport failures are mapped to the sentinel errors in errors.go
// so callers can use [errors.Is] without knowing the protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-review-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_adapter_mock.go -package=mock

// StoreAdapter reads public app metadata from the store.
type StoreAdapter interface {
	// Search returns at most req.Limit listings matching req.Query, in store
	// order, without duplicate app ids. No match is an empty slice and a nil
	// error.
	Search(ctx context.Context, req models.SearchRequest) ([]models.AppListing, error)

	// Reviews returns at most req.Count reviews of req.AppID in the order
	// given by req.Sort. Pagination is handled internally.
	Reviews(ctx context.Context, req models.ReviewsRequest) ([]models.Review, error)
}
