// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
	"github.com/MKhiriev/go-review-fetcher/models"
)

// DefaultPreviewRows is the number of rows shown on screen when not configured.
const DefaultPreviewRows = 5

// State is a step of the interactive flow.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateAwaitingSelection
	StateNoMatches
	StateSearchError
	StateFetching
	StateDisplaying
	StateNoReviews
	StateFetchError
	StateExported
)

var stateNames = map[State]string{
	StateIdle:              "idle",
	StateSearching:         "searching",
	StateAwaitingSelection: "awaiting_selection",
	StateNoMatches:         "no_matches",
	StateSearchError:       "search_error",
	StateFetching:          "fetching",
	StateDisplaying:        "displaying",
	StateNoReviews:         "no_reviews",
	StateFetchError:        "fetch_error",
	StateExported:          "exported",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Snapshot is an immutable copy of the session after a transition. Slices
// are owned by the snapshot and never touched by the session again.
type Snapshot struct {
	State    State
	Query    string
	Listings []models.AppListing
	Selected *models.AppListing
	Region   models.Region
	Count    int

	Preview []models.PreviewRow
	Rows    []models.ExportRow

	Notice string
	Err    error

	// Progress is 0 while a fetch runs and 1 once it has ended.
	Progress float64
}

// HasResults reports whether the snapshot carries a listing choice.
func (s Snapshot) HasResults() bool {
	return len(s.Listings) > 0
}

// CanExport reports whether Export is allowed from this snapshot.
func (s Snapshot) CanExport() bool {
	return (s.State == StateDisplaying || s.State == StateExported) && s.Selected != nil && len(s.Rows) > 0
}

// SessionConfig tunes a [Session].
type SessionConfig struct {
	PreviewRows int
}

// Session drives search, selection, fetch and export for one user. It is
// not safe for concurrent use; callers sharing a session must serialize
// access.
type Session struct {
	search    SearchService
	reviews   ReviewService
	exporter  Exporter
	validator validators.Validator

	previewRows int
	snap        Snapshot

	logger *logger.Logger
}

func NewSession(
	cfg SessionConfig,
	search SearchService,
	reviews ReviewService,
	exporter Exporter,
	validator validators.Validator,
	logger *logger.Logger,
) *Session {
	previewRows := cfg.PreviewRows
	if previewRows < 1 {
		previewRows = DefaultPreviewRows
	}

	return &Session{
		search:      search,
		reviews:     reviews,
		exporter:    exporter,
		validator:   validator,
		previewRows: previewRows,
		snap:        Snapshot{State: StateIdle, Region: models.DefaultRegion, Count: models.MinReviewCount},
		logger:      logger,
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return s.snap.clone()
}

// Search looks query up through the search cache. A blank query returns the
// session to Idle. Search failures end in SearchError with a notice.
func (s *Session) Search(ctx context.Context, query string) Snapshot {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Reset()
	}

	s.transition(Snapshot{
		State:  StateSearching,
		Query:  query,
		Region: s.snap.Region,
		Count:  s.snap.Count,
	})

	listings, err := s.search.Search(ctx, query)
	next := s.snap
	switch {
	case err != nil:
		next.State = StateSearchError
		next.Err = err
		next.Notice = app.SearchFailed(err)
	case len(listings) == 0:
		next.State = StateNoMatches
		next.Notice = app.MsgNoMatchingApps
	default:
		next.State = StateAwaitingSelection
		next.Listings = listings
	}

	return s.transition(next)
}

// Select picks the listing with appID from the current results.
func (s *Session) Select(appID string) (Snapshot, error) {
	idx := slices.IndexFunc(s.snap.Listings, func(l models.AppListing) bool {
		return l.AppID == appID
	})
	if idx < 0 {
		return s.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownListing, appID)
	}
	return s.SelectIndex(idx)
}

// SelectIndex picks the i-th listing from the current results and drops any
// previously fetched reviews.
func (s *Session) SelectIndex(i int) (Snapshot, error) {
	if i < 0 || i >= len(s.snap.Listings) {
		return s.Snapshot(), fmt.Errorf("%w: index %d of %d", ErrUnknownListing, i, len(s.snap.Listings))
	}

	selected := s.snap.Listings[i]
	next := s.base()
	next.State = StateAwaitingSelection
	next.Selected = &selected

	return s.transition(next), nil
}

// BackToSelection keeps the current search results and clears everything
// that followed the selection.
func (s *Session) BackToSelection() Snapshot {
	if !s.snap.HasResults() {
		return s.Reset()
	}

	next := s.base()
	next.State = StateAwaitingSelection
	next.Selected = s.snap.Selected
	return s.transition(next)
}

// Fetch downloads count reviews of the selected app in region. Invalid input
// and a missing selection are returned as errors and leave the session
// unchanged; upstream failures end in FetchError.
func (s *Session) Fetch(ctx context.Context, region models.Region, count int) (Snapshot, error) {
	if s.snap.Selected == nil {
		return s.Snapshot(), ErrNoSelection
	}

	req := models.FetchRequest{AppID: s.snap.Selected.AppID, Region: region, Count: count}
	if err := s.validator.Validate(ctx, req); err != nil {
		return s.Snapshot(), err
	}

	fetching := s.base()
	fetching.State = StateFetching
	fetching.Selected = s.snap.Selected
	fetching.Region = region
	fetching.Count = count
	fetching.Progress = 0
	s.transition(fetching)

	result := s.reviews.Fetch(ctx, req)

	next := s.snap
	next.Progress = 1
	switch {
	case result.Failed():
		next.State = StateFetchError
		next.Err = result.Err
		next.Notice = app.FetchFailed(result.Err)
	case result.Empty():
		next.State = StateNoReviews
		next.Notice = app.MsgNoReviews
	default:
		next.State = StateDisplaying
		next.Rows = ToExportRows(result.Reviews)
		next.Preview = ToPreviewRows(result.Reviews[:min(s.previewRows, len(result.Reviews))])
	}

	return s.transition(next), nil
}

// FetchListing selects the listing with appID and fetches its reviews. The
// request is validated before the selection changes, so rejected input keeps
// the current results and their export.
func (s *Session) FetchListing(ctx context.Context, appID string, region models.Region, count int) (Snapshot, error) {
	if !slices.ContainsFunc(s.snap.Listings, func(l models.AppListing) bool { return l.AppID == appID }) {
		return s.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownListing, appID)
	}

	req := models.FetchRequest{AppID: appID, Region: region, Count: count}
	if err := s.validator.Validate(ctx, req); err != nil {
		return s.Snapshot(), err
	}

	if _, err := s.Select(appID); err != nil {
		return s.Snapshot(), err
	}
	return s.Fetch(ctx, region, count)
}

// Export renders the fetched reviews as a CSV file. Allowed only after a
// successful fetch.
func (s *Session) Export() (models.ExportFile, Snapshot, error) {
	if !s.snap.CanExport() {
		return models.ExportFile{}, s.Snapshot(), ErrNothingToExport
	}

	file, err := s.exporter.Export(s.snap.Selected.AppID, s.snap.Rows)
	if err != nil {
		return models.ExportFile{}, s.Snapshot(), fmt.Errorf("export: %w", err)
	}

	next := s.snap
	next.State = StateExported
	next.Notice = ""
	return file, s.transition(next), nil
}

// Reset returns to Idle, keeping only the last region and count choice.
func (s *Session) Reset() Snapshot {
	return s.transition(Snapshot{
		State:  StateIdle,
		Region: s.snap.Region,
		Count:  s.snap.Count,
	})
}

// base carries the search context over to the next state.
func (s *Session) base() Snapshot {
	return Snapshot{
		Query:    s.snap.Query,
		Listings: s.snap.Listings,
		Region:   s.snap.Region,
		Count:    s.snap.Count,
	}
}

func (s *Session) transition(next Snapshot) Snapshot {
	if next.State != s.snap.State {
		s.logger.Debug().
			Stringer("from", s.snap.State).
			Stringer("to", next.State).
			Msg("session transition")
	}
	s.snap = next
	return s.snap.clone()
}

func (s Snapshot) clone() Snapshot {
	s.Listings = slices.Clone(s.Listings)
	s.Preview = slices.Clone(s.Preview)
	s.Rows = slices.Clone(s.Rows)
	if s.Selected != nil {
		selected := *s.Selected
		s.Selected = &selected
	}
	return s
}
