package tui

import "github.com/MKhiriev/go-review-fetcher/internal/service"

type searchDoneMsg struct {
	snap service.Snapshot
}

// fetchDoneMsg carries err only for rejected input. Upstream failures are
// part of snap.
type fetchDoneMsg struct {
	snap service.Snapshot
	err  error
}

type exportSavedMsg struct {
	snap service.Snapshot
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
