package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/internal/domains/cafe/model"
	"krown/internal/domains/cafe/model/dto"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCafe = "cafe:gets"

	pathCafes         = "/cafes"
	imagesPathSegment = "images"
	menuImagesSegment = "menu-images"
)

// Cafe manages the café profile: details, main and menu image sets. The
// UPI ID is unique across cafés upstream; a duplicate comes back as a
// conflict and is surfaced with the upstream's message.
type Cafe interface {
	Get(ctx context.Context, cafeID string) (model.Cafe, error)
	Update(ctx context.Context, cafeID string, req dto.UpdateCafeRequest) (message string, err error)
	Images(ctx context.Context, cafeID string) ([]model.Image, error)
	MenuImages(ctx context.Context, cafeID string) ([]model.Image, error)
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cafe {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, cafeID string) (res model.Cafe, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCafe, cafeID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cafe profile")

		return res, nil
	}

	_, err = s.client.Get(ctx, pathCafes+"/"+cafeID, nil, &res)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get cafe profile")

		return model.Cafe{}, fmt.Errorf("failed to get cafe profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if saveErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to cache cafe profile")
		}
	}()

	return res, nil
}

// Update replaces the editable café profile upstream. A duplicate UPI ID
// is rejected there with a conflict; the profile cache is only dropped on
// success so a failed update leaves the last good profile readable.
func (s *serviceImpl) Update(ctx context.Context, cafeID string, req dto.UpdateCafeRequest) (message string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err = s.client.Put(ctx, pathCafes+"/"+cafeID, req, nil)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to update cafe profile")

		return constant.Empty, fmt.Errorf("failed to update cafe profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetCafe, cafeID))
	}()

	return message, nil
}

func (s *serviceImpl) Images(ctx context.Context, cafeID string) (res []model.Image, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Images")
	defer scope.End()
	defer scope.TraceIfError(err)

	var payload dto.ImagesResponse

	_, err = s.client.Get(ctx, strings.Join([]string{pathCafes, cafeID, imagesPathSegment}, "/"), nil, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get cafe images")

		return nil, fmt.Errorf("failed to get cafe images: %w", err)
	}

	return payload.Main.Images, nil
}

func (s *serviceImpl) MenuImages(ctx context.Context, cafeID string) (res []model.Image, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MenuImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.client.Get(ctx, strings.Join([]string{pathCafes, cafeID, menuImagesSegment}, "/"), nil, &res)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get cafe menu images")

		return nil, fmt.Errorf("failed to get cafe menu images: %w", err)
	}

	return res, nil
}
