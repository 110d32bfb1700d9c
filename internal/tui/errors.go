// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
)

// humanizeUpstreamError returns a hint for failures the user can act on, or
// "" when the raw error says enough.
func humanizeUpstreamError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "The store is rate limiting requests. Wait a minute and try again."
	case errors.Is(err, adapter.ErrNotFound):
		return "The app is not available in the selected region."
	case errors.Is(err, adapter.ErrUpstreamUnavailable):
		return "The store is temporarily unavailable."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the store is unreachable."
	}

	return ""
}

func describeFailure(snap service.Snapshot) string {
	if hint := humanizeUpstreamError(snap.Err); hint != "" {
		return snap.Notice + "\n\n" + hint
	}
	return snap.Notice
}
