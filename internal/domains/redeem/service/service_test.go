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
	"krown/internal/domains/redeem/model"
	"krown/internal/domains/redeem/model/dto"
	"krown/internal/domains/redeem/service"
	cacheMocks "krown/shared/cache/mocks"
	"krown/shared/failure"
)

func newService(t *testing.T) (service.Redeem, *krownMocks.MockClient, *cacheMocks.MockRedisCache) {
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

func allowCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestRedeemService_Initiate_NormalizesMobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
	}{
		{name: "bare ten digits", mobile: "9876543210"},
		{name: "with country code", mobile: "+919876543210"},
		{name: "with spaces and hyphens", mobile: "98765 432-10"},
		{name: "prefix without plus", mobile: "919876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache := newService(t)

			allowCacheWrites(mockCache)

			mockClient.EXPECT().
				Post(gomock.Any(), "/redeems", dto.InitiatePayload{
					CafeID:     "c-1",
					UserMobile: "+919876543210",
					ItemID:     "i-1",
				}, gomock.Nil()).
				Return("redeem initiated, code sent to customer", nil)

			msg, err := svc.Initiate(context.Background(), "c-1", dto.InitiateRequest{
				UserMobileNo: tt.mobile,
				ItemID:       "i-1",
			})

			assert.NoError(t, err)
			assert.Equal(t, "redeem initiated, code sent to customer", msg)
		})
	}
}

func TestRedeemService_Initiate_InvalidMobile(t *testing.T) {
	svc, mockClient, _ := newService(t)

	// Bad input never reaches the upstream.
	mockClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Initiate(context.Background(), "c-1", dto.InitiateRequest{
		UserMobileNo: "12345",
		ItemID:       "i-1",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
}

func TestRedeemService_ForUser_QueriesWithNormalizedMobile(t *testing.T) {
	svc, mockClient, _ := newService(t)

	want := []model.Redemption{{RedeemID: "r-1", IsRedeemed: false}}

	mockClient.EXPECT().
		Get(gomock.Any(), "/redeems/cafe", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) (string, error) {
			assert.Equal(t, "c-1", query.Get("cafeId"))
			assert.Equal(t, "+919876543210", query.Get("userMobile"))
			assert.Equal(t, "initiated", query.Get("type"))

			payload := out.(*dto.RedemptionsResponse)
			payload.Redemptions = want

			return "", nil
		})

	res, err := svc.ForUser(context.Background(), "c-1", dto.ForUserParams{
		UserMobileNo: "98765 43210",
		State:        model.StateInitiated,
	})

	assert.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestRedeemService_Confirm_Success(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Post(gomock.Any(), "/redeems/confirm", dto.ConfirmPayload{
			RedeemID:   "r-1",
			RedeemCode: "4821",
		}, gomock.Nil()).
		Return("redeem confirmed", nil)

	msg, err := svc.Confirm(context.Background(), "c-1", dto.ConfirmRequest{
		RedeemID:   "r-1",
		RedeemCode: "4821",
	})

	assert.NoError(t, err)
	assert.Equal(t, "redeem confirmed", msg)
}

func TestRedeemService_Confirm_UpstreamRejections(t *testing.T) {
	tests := []struct {
		name     string
		upstream error
		wantCode int
	}{
		{name: "code mismatch", upstream: failure.Conflict("redeem code does not match"), wantCode: http.StatusConflict},
		{name: "already confirmed", upstream: failure.Conflict("redeem already confirmed"), wantCode: http.StatusConflict},
		{name: "unknown redemption", upstream: failure.NotFound("redeem not found"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache := newService(t)

			mockClient.EXPECT().
				Post(gomock.Any(), "/redeems/confirm", gomock.Any(), gomock.Nil()).
				Return("", tt.upstream)

			// No cache invalidation for a failed confirmation.
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Confirm(context.Background(), "c-1", dto.ConfirmRequest{
				RedeemID:   "r-1",
				RedeemCode: "0000",
			})

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRedeemService_ListPartitioned_SplitsByState(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Get(gomock.Any(), "/redeems/cafe", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) (string, error) {
			assert.Equal(t, "c-1", query.Get("cafeId"))

			payload := out.(*dto.RedemptionsResponse)
			payload.Redemptions = []model.Redemption{
				{RedeemID: "r-1", IsRedeemed: false},
				{RedeemID: "r-2", IsRedeemed: true},
				{RedeemID: "r-3", IsRedeemed: false},
			}

			return "", nil
		})

	res, err := svc.ListPartitioned(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Len(t, res.Initiated, 2)
	assert.Len(t, res.Confirmed, 1)
	assert.Equal(t, "r-2", res.Confirmed[0].RedeemID)
}
