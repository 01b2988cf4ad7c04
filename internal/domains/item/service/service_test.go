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
	"krown/internal/domains/item/model"
	"krown/internal/domains/item/model/dto"
	"krown/internal/domains/item/service"
	cacheMocks "krown/shared/cache/mocks"
	"krown/shared/failure"
)

func newService(t *testing.T) (service.Item, *krownMocks.MockClient, *cacheMocks.MockRedisCache) {
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

func createRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		ItemName:        "Filter Coffee",
		ItemDescription: "South Indian filter coffee",
		Category:        "beverages",
		Price:           120,
	}
}

func TestItemService_List(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	allowCacheWrites(mockCache)

	want := []model.Item{{ItemID: 1, ItemName: "Filter Coffee", Price: 120}}

	mockClient.EXPECT().
		Get(gomock.Any(), "/cafes/cafe/c-1", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) (string, error) {
			payload := out.(*dto.CafeResponse)
			payload.Items = want

			return "", nil
		})

	res, err := svc.List(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestItemService_Create_RejectsNonPositivePrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
	}{
		{name: "zero price", price: 0},
		{name: "negative price", price: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, _ := newService(t)

			mockClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			req := createRequest()
			req.Price = tt.price

			err := svc.Create(context.Background(), "c-1", req)

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestItemService_Create_Success(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Post(gomock.Any(), "/cafes/items/create", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, body any, _ any) (string, error) {
			payload := body.(map[string]any)
			assert.Equal(t, "c-1", payload["cafe_id"])
			assert.Equal(t, "Filter Coffee", payload["item_name"])

			return "", nil
		})

	err := svc.Create(context.Background(), "c-1", createRequest())

	assert.NoError(t, err)
}

func TestItemService_Update_Success(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Put(gomock.Any(), "/cafes/items/update", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, body any, _ any) (string, error) {
			payload := body.(map[string]any)
			assert.Equal(t, 7, payload["item_id"])

			return "", nil
		})

	err := svc.Update(context.Background(), "c-1", 7, dto.UpdateItemRequest(createRequest()))

	assert.NoError(t, err)
}

func TestItemService_Delete_Success(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	allowCacheWrites(mockCache)

	mockClient.EXPECT().
		Delete(gomock.Any(), "/cafes/items/delete?item_id=7", gomock.Nil()).
		Return("", nil)

	err := svc.Delete(context.Background(), "c-1", 7)

	assert.NoError(t, err)
}
