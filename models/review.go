// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SortOrder is the store-side ordering code for review listings.
type SortOrder int

// Sort orders understood by the Google Play reviews RPC.
const (
	SortMostRelevant SortOrder = 1
	SortNewest       SortOrder = 2
	SortRating       SortOrder = 3
)

// Review is a single user review of a listing, optionally carrying the
// developer reply.
//
// ResponseContent and RespondedAt are nil when the developer never replied.
type Review struct {
	ReviewID        string     `json:"review_id"`
	UserName        string     `json:"user_name"`
	PostedAt        time.Time  `json:"posted_at"`
	Content         string     `json:"content"`
	Rating          int        `json:"rating"`
	ResponseContent *string    `json:"response_content,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
}

// HasResponse reports whether the developer replied to the review.
func (r Review) HasResponse() bool {
	return r.ResponseContent != nil && *r.ResponseContent != ""
}

// ReviewsRequest describes one bounded review listing call against the store.
type ReviewsRequest struct {
	AppID  string
	Locale string
	Region string
	Count  int
	Sort   SortOrder
}

// FetchRequest is what the session controller asks the review service for.
type FetchRequest struct {
	AppID  string
	Region Region
	Count  int
}

// FetchResult is either a review list or the reason the fetch failed.
//
// A failed fetch carries a nil Reviews slice; callers branch on Err instead
// of relying on error propagation.
type FetchResult struct {
	Reviews []Review
	Err     error
}

// Failed reports whether the fetch ended with an error.
func (f FetchResult) Failed() bool {
	return f.Err != nil
}

// Empty reports whether the fetch succeeded without returning any review.
func (f FetchResult) Empty() bool {
	return f.Err == nil && len(f.Reviews) == 0
}
