// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-visible wording shared by the terminal and
// browser front ends, so both render the same notices.
package app

import "fmt"

const (
	// MsgNoMatchingApps is shown when a search returns no listings.
	MsgNoMatchingApps = "No matching apps found. Please refine your search."

	// MsgNoReviews is shown when a fetch succeeds with zero reviews.
	MsgNoReviews = "No reviews found."

	// MsgSearchFailed prefixes the reason a search failed.
	MsgSearchFailed = "Error searching apps"

	// MsgFetchFailed prefixes the reason a review fetch failed.
	MsgFetchFailed = "Error fetching reviews"

	MsgEnterAppName = "Enter the app name"

	// MsgEmptyQuery is shown when a search is submitted without a name.
	MsgEmptyQuery = "Please enter an app name."

	MsgSelectApp = "Select the app"

	MsgFetching = "Fetching reviews..."

	MsgNothingToExport = "nothing to export"

	MsgInvalidDataProvided = "invalid data provided"

	MsgInternalServerError = "internal server error"
)

// SearchFailed renders the notice for a failed search.
func SearchFailed(reason error) string {
	return fmt.Sprintf("%s: %v", MsgSearchFailed, reason)
}

// FetchFailed renders the notice for a failed review fetch.
func FetchFailed(reason error) string {
	return fmt.Sprintf("%s: %v", MsgFetchFailed, reason)
}

// ExportedTo renders the confirmation after a CSV file was written.
func ExportedTo(path string) string {
	return fmt.Sprintf("Saved reviews to %s", path)
}
