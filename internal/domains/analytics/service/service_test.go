package service_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"krown/config"
	krownMocks "krown/infras/krown/mocks"
	otelMocks "krown/infras/otel/mocks"
	"krown/internal/domains/analytics/model"
	"krown/internal/domains/analytics/service"
	cacheMocks "krown/shared/cache/mocks"
	"krown/shared/failure"
)

func newService(t *testing.T) (service.Analytics, *krownMocks.MockClient, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := krownMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 30

	svc := service.New(mockClient, cfg, mockCache, otelMocks.NewOtel())

	return svc, mockClient, mockCache
}

func cacheMiss() error {
	return failure.NotFound("cache miss")
}

func TestAnalyticsService_Report_Success(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockClient.EXPECT().
		Get(gomock.Any(), "/bookings/cafe-analytics/c-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) (string, error) {
			assert.Equal(t, "1m", query.Get("range"))
			assert.Equal(t, "ravi", query.Get("search"))

			report := out.(*model.Report)
			report.Summary = model.Summary{TotalAmount: 1500, PaidBookings: 3, NormalBookings: 2}

			return "", nil
		})

	res, err := svc.Report(context.Background(), "c-1", model.RangeMonth, "ravi")

	assert.NoError(t, err)
	assert.Equal(t, float64(1500), res.Summary.TotalAmount)
}

func TestAnalyticsService_Report_DefaultsRange(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockClient.EXPECT().
		Get(gomock.Any(), "/bookings/cafe-analytics/c-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, _ any) (string, error) {
			assert.Equal(t, "7d", query.Get("range"))

			return "", nil
		})

	_, err := svc.Report(context.Background(), "c-1", "", "")

	assert.NoError(t, err)
}

func TestAnalyticsService_Report_RejectsUnknownRange(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Report(context.Background(), "c-1", model.Range("2w"), "")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
