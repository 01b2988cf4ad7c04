package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/internal/domains/item/model"
	"krown/internal/domains/item/model/dto"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"
	"krown/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetItems = "item:gets"

	pathCafe       = "/cafes/cafe"
	pathItemCreate = "/cafes/items/create"
	pathItemUpdate = "/cafes/items/update"
	pathItemDelete = "/cafes/items/delete"
)

type Item interface {
	List(ctx context.Context, cafeID string) ([]model.Item, error)
	Create(ctx context.Context, cafeID string, req dto.CreateItemRequest) error
	Update(ctx context.Context, cafeID string, itemID int, req dto.UpdateItemRequest) error
	Delete(ctx context.Context, cafeID string, itemID int) error
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Item {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, cafeID string) (res []model.Item, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItems, cafeID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cafe items")

		return res, nil
	}

	var payload dto.CafeResponse

	_, err = s.client.Get(ctx, pathCafe+"/"+cafeID, nil, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get cafe items")

		return nil, fmt.Errorf("failed to get cafe items: %w", err)
	}

	res = payload.Items

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cafe items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, cafeID string, req dto.CreateItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	body := map[string]any{
		"cafe_id":          cafeID,
		"item_name":        req.ItemName,
		"item_description": req.ItemDescription,
		"category":         req.Category,
		"price":            req.Price,
		"recommended":      req.Recommended,
	}

	_, err = s.client.Post(ctx, pathItemCreate, body, nil)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to create item")

		return fmt.Errorf("failed to create item: %w", err)
	}

	s.refresh(ctx, cafeID)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, cafeID string, itemID int, req dto.UpdateItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	body := map[string]any{
		"item_id":          itemID,
		"item_name":        req.ItemName,
		"item_description": req.ItemDescription,
		"category":         req.Category,
		"price":            req.Price,
		"recommended":      req.Recommended,
	}

	_, err = s.client.Put(ctx, pathItemUpdate, body, nil)
	if err != nil {
		log.Error().Err(err).Int("itemID", itemID).Msg("failed to update item")

		return fmt.Errorf("failed to update item: %w", err)
	}

	s.refresh(ctx, cafeID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, cafeID string, itemID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.client.Delete(ctx, fmt.Sprintf("%s?item_id=%d", pathItemDelete, itemID), nil)
	if err != nil {
		log.Error().Err(err).Int("itemID", itemID).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.refresh(ctx, cafeID)

	return nil
}

func (s *serviceImpl) refresh(ctx context.Context, cafeID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetItems, cafeID))
	}()
}
