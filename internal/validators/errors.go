package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyQuery    = errors.New("search query is required")
	ErrInvalidLimit  = errors.New("search limit must be positive")
	ErrEmptyAppID    = errors.New("app id is required")
	ErrInvalidRegion = errors.New("unsupported region")
	ErrInvalidCount  = errors.New("invalid review count")
)
