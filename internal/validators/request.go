package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/models"
)

// Field names accepted by [RequestValidator].
const (
	FieldQuery  = "query"
	FieldLimit  = "limit"
	FieldAppID  = "app_id"
	FieldRegion = "region"
	FieldCount  = "count"
)

// RequestValidator validates [models.SearchRequest] and [models.FetchRequest]
// values, in both value and pointer form.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate returns ErrUnsupportedType for any other type and ErrUnknownField
// for a field name the type does not have.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case models.FetchRequest:
		return v.validateFetchRequest(ctx, value, fields...)
	case *models.FetchRequest:
		return v.validateFetchRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSearchRequest(_ context.Context, req models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if strings.TrimSpace(req.Query) == "" {
				return ErrEmptyQuery
			}
		case FieldLimit:
			if req.Limit < 1 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateFetchRequest(_ context.Context, req models.FetchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAppID, FieldRegion, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldAppID:
			if strings.TrimSpace(req.AppID) == "" {
				return ErrEmptyAppID
			}
		case FieldRegion:
			if !req.Region.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRegion, req.Region)
			}
		case FieldCount:
			if err := ValidateCount(req.Count); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateCount reports whether n is an allowed review count: between
// [models.MinReviewCount] and [models.MaxReviewCount] in steps of
// [models.ReviewCountStep].
func ValidateCount(n int) error {
	if n < models.MinReviewCount || n > models.MaxReviewCount || n%models.ReviewCountStep != 0 {
		return fmt.Errorf("%w: %d, want %d..%d in steps of %d", ErrInvalidCount, n,
			models.MinReviewCount, models.MaxReviewCount, models.ReviewCountStep)
	}
	return nil
}
