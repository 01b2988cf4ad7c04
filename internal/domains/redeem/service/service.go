package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/internal/domains/redeem/model"
	"krown/internal/domains/redeem/model/dto"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"
	"krown/shared/phone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRedeems = "redeem:gets"

	pathRedeems       = "/redeems"
	pathRedeemsCafe   = "/redeems/cafe"
	pathRedeemConfirm = "/redeems/confirm"

	paramCafeID     = "cafeId"
	paramUserMobile = "userMobile"
	paramType       = "type"
)

type Redeem interface {
	Initiate(ctx context.Context, cafeID string, req dto.InitiateRequest) (message string, err error)
	ForUser(ctx context.Context, cafeID string, params dto.ForUserParams) ([]model.Redemption, error)
	Confirm(ctx context.Context, cafeID string, req dto.ConfirmRequest) (message string, err error)
	ListPartitioned(ctx context.Context, cafeID string) (dto.PartitionedResponse, error)
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Redeem {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Initiate creates a redemption in the initiated state. The upstream relays
// the redeem code to the customer; the returned message is all the operator
// sees.
func (s *serviceImpl) Initiate(ctx context.Context, cafeID string, req dto.InitiateRequest) (message string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	mobile, err := phone.Normalize(req.UserMobileNo)
	if err != nil {
		return constant.Empty, err
	}

	payload := dto.InitiatePayload{
		CafeID:     cafeID,
		UserMobile: mobile,
		ItemID:     req.ItemID,
	}

	message, err = s.client.Post(ctx, pathRedeems, payload, nil)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to initiate redemption")

		return constant.Empty, fmt.Errorf("failed to initiate redemption: %w", err)
	}

	s.refresh(ctx, cafeID)

	return message, nil
}

// ForUser finds a customer's redemptions at the café. The mobile number
// goes through the same normalization as Initiate so lookups match no
// matter how the number was typed.
func (s *serviceImpl) ForUser(ctx context.Context, cafeID string, params dto.ForUserParams) (res []model.Redemption, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	mobile, err := phone.Normalize(params.UserMobileNo)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set(paramCafeID, cafeID)
	query.Set(paramUserMobile, mobile)

	if params.State != constant.Empty {
		query.Set(paramType, string(params.State))
	}

	var payload dto.RedemptionsResponse

	_, err = s.client.Get(ctx, pathRedeemsCafe, query, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get user redemptions")

		return nil, fmt.Errorf("failed to get user redemptions: %w", err)
	}

	return payload.Redemptions, nil
}

// Confirm flips a redemption to confirmed when the presented code matches.
// Code comparison happens upstream; mismatches and repeats come back as
// business-rule failures.
func (s *serviceImpl) Confirm(ctx context.Context, cafeID string, req dto.ConfirmRequest) (message string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := dto.ConfirmPayload{
		RedeemID:   req.RedeemID,
		RedeemCode: req.RedeemCode,
	}

	message, err = s.client.Post(ctx, pathRedeemConfirm, payload, nil)
	if err != nil {
		log.Error().Err(err).Str("redeemID", req.RedeemID).Msg("failed to confirm redemption")

		return constant.Empty, fmt.Errorf("failed to confirm redemption: %w", err)
	}

	s.refresh(ctx, cafeID)

	return message, nil
}

func (s *serviceImpl) ListPartitioned(ctx context.Context, cafeID string) (res dto.PartitionedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPartitioned")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRedeems, cafeID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for redemptions")

		return res, nil
	}

	query := url.Values{}
	query.Set(paramCafeID, cafeID)

	var payload dto.RedemptionsResponse

	_, err = s.client.Get(ctx, pathRedeemsCafe, query, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get cafe redemptions")

		return res, fmt.Errorf("failed to get cafe redemptions: %w", err)
	}

	res.Initiated, res.Confirmed = model.Partition(payload.Redemptions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save redemptions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) refresh(ctx context.Context, cafeID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetRedeems, cafeID))
	}()
}
