package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
)

var (
	errInvalidForm   = errors.New("malformed form")
	errInvalidRegion = errors.New("unsupported region")
	errInvalidCount  = errors.New("review count must be a number")
)

var errorStatusMap = map[error]int{
	errInvalidForm:   http.StatusBadRequest,
	errInvalidRegion: http.StatusBadRequest,
	errInvalidCount:  http.StatusBadRequest,

	validators.ErrEmptyQuery:    http.StatusBadRequest,
	validators.ErrInvalidLimit:  http.StatusBadRequest,
	validators.ErrEmptyAppID:    http.StatusBadRequest,
	validators.ErrInvalidRegion: http.StatusBadRequest,
	validators.ErrInvalidCount:  http.StatusBadRequest,

	service.ErrUnknownListing:  http.StatusBadRequest,
	service.ErrNoSelection:     http.StatusConflict,
	service.ErrNothingToExport: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
