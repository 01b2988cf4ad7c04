package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"krown/config"
	krownMocks "krown/infras/krown/mocks"
	otelMocks "krown/infras/otel/mocks"
	"krown/internal/domains/cafe/model"
	"krown/internal/domains/cafe/model/dto"
	"krown/internal/domains/cafe/service"
	cacheMocks "krown/shared/cache/mocks"
	"krown/shared/failure"
)

func newService(t *testing.T) (service.Cafe, *krownMocks.MockClient, *cacheMocks.MockRedisCache) {
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

func updateRequest() dto.UpdateCafeRequest {
	return dto.UpdateCafeRequest{
		CafeName:     "Krown Cafe",
		CafeLocation: "12 MG Road, Bengaluru",
		CafeMobileNo: "+919876543210",
		CafeUpiID:    "krowncafe@upi",
		OpeningTime:  "09:00",
		ClosingTime:  "22:00",
		WorkingDays:  []string{"Monday", "Tuesday"},
		IsAvailable:  true,
	}
}

func TestCafeService_Get(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Get(gomock.Any(), "/cafes/c-1", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) (string, error) {
			cafe := out.(*model.Cafe)
			*cafe = model.Cafe{CafeID: "c-1", CafeName: "Krown Cafe", CafeUpiID: "krowncafe@upi"}

			return "", nil
		})

	res, err := svc.Get(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Equal(t, "Krown Cafe", res.CafeName)
	assert.Equal(t, "krowncafe@upi", res.CafeUpiID)
}

func TestCafeService_Get_CacheHitSkipsUpstream(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			cafe := out.(*model.Cafe)
			*cafe = model.Cafe{CafeID: "c-1", CafeName: "Krown Cafe"}

			return nil
		})

	mockClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	res, err := svc.Get(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Equal(t, "Krown Cafe", res.CafeName)
}

func TestCafeService_Update(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Put(gomock.Any(), "/cafes/c-1", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, body any, _ any) (string, error) {
			req := body.(dto.UpdateCafeRequest)
			assert.Equal(t, "krowncafe@upi", req.CafeUpiID)
			assert.Equal(t, "09:00", req.OpeningTime)

			return "Cafe updated successfully", nil
		})

	message, err := svc.Update(context.Background(), "c-1", updateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Cafe updated successfully", message)
}

func TestCafeService_Update_DuplicateUpiConflict(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Times(0)

	mockClient.EXPECT().
		Put(gomock.Any(), "/cafes/c-1", gomock.Any(), gomock.Nil()).
		Return("", failure.Conflict("UPI ID already in use by another cafe"))

	_, err := svc.Update(context.Background(), "c-1", updateRequest())

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Contains(t, err.Error(), "UPI ID already in use")
}

func TestCafeService_Images(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		Get(gomock.Any(), "/cafes/c-1/images", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) (string, error) {
			payload := out.(*dto.ImagesResponse)
			payload.Main.Images = []model.Image{{ImageID: 1, CafeID: "c-1", ImageURL: "https://cdn/img-1.webp"}}

			return "", nil
		})

	res, err := svc.Images(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, res[0].ImageID)
}

func TestCafeService_MenuImages(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		Get(gomock.Any(), "/cafes/c-1/menu-images", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) (string, error) {
			images := out.(*[]model.Image)
			*images = []model.Image{{ImageID: 7, ImageURL: "https://cdn/menu-1.webp"}}

			return "", nil
		})

	res, err := svc.MenuImages(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 7, res[0].ImageID)
}
