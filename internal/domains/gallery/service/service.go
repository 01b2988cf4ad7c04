package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/infras/s3"
	"krown/internal/domains/gallery/model"
	"krown/internal/domains/gallery/model/dto"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGallery = "gallery:gets"

	pathGalleryList   = "/cafes/%s/gallery"
	pathGalleryUpload = "/cafes/gallery/upload"
	pathGalleryDelete = "/cafes/gallery/%d"
)

type Gallery interface {
	List(ctx context.Context, cafeID string) ([]model.Image, error)
	UploadImage(ctx context.Context, cafeID string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, cafeID string, imageID int, imageURL string) error
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	s3     s3.S3
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		s3:     s3,
	}
}

func (s *serviceImpl) List(ctx context.Context, cafeID string) (res []model.Image, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGallery, cafeID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery")

		return res, nil
	}

	var payload dto.GalleryResponse

	_, err = s.client.Get(ctx, fmt.Sprintf(pathGalleryList, cafeID), nil, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get gallery")

		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}

	res = payload.Images

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

// UploadImage stores the file in the blob store, then registers the
// resulting URL with the upstream. A failed registration leaves an orphan
// object rather than a dangling record.
func (s *serviceImpl) UploadImage(ctx context.Context, cafeID string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	body := map[string]any{
		"cafe_id":   cafeID,
		"image_url": url,
	}

	_, err = s.client.Post(ctx, pathGalleryUpload, body, nil)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to register gallery image")

		return res, fmt.Errorf("failed to register gallery image: %w", err)
	}

	res.FromModel(url, req.Image.Filename)

	s.refresh(ctx, cafeID)

	return res, nil
}

// DeleteImage removes the upstream record first; the blob is only deleted
// once nothing references it.
func (s *serviceImpl) DeleteImage(ctx context.Context, cafeID string, imageID int, imageURL string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.client.Delete(ctx, fmt.Sprintf(pathGalleryDelete, imageID), nil)
	if err != nil {
		log.Error().Err(err).Int("imageID", imageID).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}()

	s.refresh(ctx, cafeID)

	return nil
}

func (s *serviceImpl) refresh(ctx context.Context, cafeID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetGallery, cafeID))
	}()
}
