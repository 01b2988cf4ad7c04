package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"krown/config"
	krownMocks "krown/infras/krown/mocks"
	otelMocks "krown/infras/otel/mocks"
	s3Mocks "krown/infras/s3/mocks"
	"krown/internal/domains/gallery/model"
	"krown/internal/domains/gallery/model/dto"
	"krown/internal/domains/gallery/service"
	cacheMocks "krown/shared/cache/mocks"
	"krown/shared/failure"
)

func newService(t *testing.T) (service.Gallery, *krownMocks.MockClient, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := krownMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 30
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(mockClient, cfg, mockCache, otelMocks.NewOtel(), mockS3)

	return svc, mockClient, mockCache, mockS3
}

func cacheMiss() error {
	return failure.NotFound("cache miss")
}

func allowCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestGalleryService_List(t *testing.T) {
	svc, mockClient, mockCache, _ := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss())
	allowCacheWrites(mockCache)

	want := []model.Image{{ImageID: 1, CafeID: "c-1", ImageURL: "https://cdn.example.com/gallery/a.jpg"}}

	mockClient.EXPECT().
		Get(gomock.Any(), "/cafes/c-1/gallery", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) (string, error) {
			payload := out.(*dto.GalleryResponse)
			payload.Images = want

			return "", nil
		})

	res, err := svc.List(context.Background(), "c-1")

	assert.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestGalleryService_UploadImage(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockClient *krownMocks.MockClient, mockS3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful upload",
			setupMock: func(mockClient *krownMocks.MockClient, mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any(), gomock.Any(), "cafe.jpg").
					Return("https://cdn.example.com/gallery/cafe.jpg", nil)
				mockClient.EXPECT().
					Post(gomock.Any(), "/cafes/gallery/upload", gomock.Any(), gomock.Nil()).
					Return("", nil)
			},
			wantErr: false,
		},
		{
			name: "upload error",
			setupMock: func(mockClient *krownMocks.MockClient, mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 upload error"))
				mockClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: true,
		},
		{
			name: "registration error",
			setupMock: func(mockClient *krownMocks.MockClient, mockS3 *s3Mocks.MockS3) {
				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/gallery/cafe.jpg", nil)
				mockClient.EXPECT().
					Post(gomock.Any(), "/cafes/gallery/upload", gomock.Any(), gomock.Nil()).
					Return("", failure.BadGateway("upstream unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache, mockS3 := newService(t)

			allowCacheWrites(mockCache)
			tt.setupMock(mockClient, mockS3)

			req := dto.UploadImageRequest{
				Image: &multipart.FileHeader{Filename: "cafe.jpg"},
			}

			res, err := svc.UploadImage(context.Background(), "c-1", req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "https://cdn.example.com/gallery/cafe.jpg", res.URL)
				assert.Equal(t, "cafe.jpg", res.FileName)
			}
		})
	}
}

func TestGalleryService_DeleteImage(t *testing.T) {
	svc, mockClient, mockCache, mockS3 := newService(t)

	allowCacheWrites(mockCache)

	imageURL := "https://cdn.example.com/test-bucket/gallery/cafe.jpg"

	mockClient.EXPECT().
		Delete(gomock.Any(), "/cafes/gallery/7", gomock.Nil()).
		Return("", nil)
	mockS3.EXPECT().
		GetObjectNameFromURL("test-bucket", imageURL).
		Return("cafe.jpg").
		AnyTimes()
	mockS3.EXPECT().
		DeleteFile(gomock.Any(), "test-bucket", model.EntityName, "cafe.jpg").
		Return(nil).
		AnyTimes()

	err := svc.DeleteImage(context.Background(), "c-1", 7, imageURL)

	assert.NoError(t, err)
}

func TestGalleryService_DeleteImage_UpstreamFailureKeepsBlob(t *testing.T) {
	svc, mockClient, _, mockS3 := newService(t)

	mockClient.EXPECT().
		Delete(gomock.Any(), "/cafes/gallery/7", gomock.Nil()).
		Return("", failure.NotFound("image not found"))
	mockS3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteImage(context.Background(), "c-1", 7, "https://cdn.example.com/x.jpg")

	assert.Error(t, err)
}
