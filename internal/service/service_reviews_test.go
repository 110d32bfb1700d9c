package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/mock"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReviewSvc(t *testing.T, ctrl *gomock.Controller) (ReviewService, *mock.MockStoreAdapter) {
	t.Helper()
	store := mock.NewMockStoreAdapter(ctrl)
	return NewReviewService("en", store, validators.NewRequestValidator(), metrics.Nop(), logger.Nop()), store
}

func TestReviewService_Fetch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store := newTestReviewSvc(t, ctrl)

	reviews := []models.Review{
		{ReviewID: "1", Content: "great", Rating: 5, PostedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	store.EXPECT().
		Reviews(gomock.Any(), models.ReviewsRequest{
			AppID:  "com.whatsapp",
			Locale: "en",
			Region: "gb",
			Count:  50,
			Sort:   models.SortNewest,
		}).
		Return(reviews, nil)

	res := svc.Fetch(context.Background(), models.FetchRequest{AppID: "com.whatsapp", Region: models.RegionGB, Count: 50})

	require.False(t, res.Failed())
	assert.Equal(t, reviews, res.Reviews)
}

// TestReviewService_Fetch_ErrorIsCaught verifies that an upstream failure is
// carried in the result instead of being returned.
func TestReviewService_Fetch_ErrorIsCaught(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store := newTestReviewSvc(t, ctrl)

	store.EXPECT().Reviews(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrUpstreamUnavailable)

	res := svc.Fetch(context.Background(), models.FetchRequest{AppID: "com.app", Region: models.RegionUS, Count: 10})

	assert.True(t, res.Failed())
	assert.False(t, res.Empty())
	assert.ErrorIs(t, res.Err, adapter.ErrUpstreamUnavailable)
	assert.Empty(t, res.Reviews)
}

func TestReviewService_Fetch_EmptyIsNotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store := newTestReviewSvc(t, ctrl)

	store.EXPECT().Reviews(gomock.Any(), gomock.Any()).Return(nil, nil)

	res := svc.Fetch(context.Background(), models.FetchRequest{AppID: "com.app", Region: models.RegionUS, Count: 10})

	assert.False(t, res.Failed())
	assert.True(t, res.Empty())
	assert.NotNil(t, res.Reviews)
}

func TestReviewService_Fetch_InvalidRequestSkipsUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestReviewSvc(t, ctrl)

	tests := []struct {
		name    string
		req     models.FetchRequest
		wantErr error
	}{
		{name: "count not multiple of ten", req: models.FetchRequest{AppID: "a", Region: models.RegionUS, Count: 15}, wantErr: validators.ErrInvalidCount},
		{name: "count too large", req: models.FetchRequest{AppID: "a", Region: models.RegionUS, Count: 210}, wantErr: validators.ErrInvalidCount},
		{name: "unknown region", req: models.FetchRequest{AppID: "a", Region: "de", Count: 10}, wantErr: validators.ErrInvalidRegion},
		{name: "missing app id", req: models.FetchRequest{Region: models.RegionUS, Count: 10}, wantErr: validators.ErrEmptyAppID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Fetch(context.Background(), tt.req)
			assert.ErrorIs(t, res.Err, tt.wantErr)
		})
	}
}

func TestReviewService_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStoreAdapter(ctrl)
	collector := mock.NewMockMetricsCollector(ctrl)
	svc := NewReviewService("en", store, validators.NewRequestValidator(), collector, logger.Nop())

	store.EXPECT().Reviews(gomock.Any(), gomock.Any()).Return(make([]models.Review, 3), nil)
	collector.EXPECT().RecordUpstreamCall(metrics.OperationReviews, metrics.OutcomeSuccess, gomock.Any())
	collector.EXPECT().RecordReviewsFetched(3)

	res := svc.Fetch(context.Background(), models.FetchRequest{AppID: "a", Region: models.RegionAU, Count: 10})
	assert.Len(t, res.Reviews, 3)
}
