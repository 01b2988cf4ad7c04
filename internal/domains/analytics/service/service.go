package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/internal/domains/analytics/model"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"
	"krown/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReport = "analytics:report"

	pathAnalytics = "/bookings/cafe-analytics"

	paramRange  = "range"
	paramSearch = "search"
)

type Analytics interface {
	Report(ctx context.Context, cafeID string, rng model.Range, search string) (model.Report, error)
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Report fetches the dashboard payload for a window. All aggregation
// happens upstream; this is a cacheable passthrough.
func (s *serviceImpl) Report(ctx context.Context, cafeID string, rng model.Range, search string) (res model.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report")
	defer scope.End()
	defer scope.TraceIfError(err)

	if rng == constant.Empty {
		rng = model.RangeDefault
	}

	if !rng.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid analytics range: %s", rng)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetReport, cafeID, string(rng), search)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for analytics report")

		return res, nil
	}

	query := url.Values{}
	query.Set(paramRange, string(rng))

	if search != constant.Empty {
		query.Set(paramSearch, search)
	}

	_, err = s.client.Get(ctx, pathAnalytics+"/"+cafeID, query, &res)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get analytics report")

		return res, fmt.Errorf("failed to get analytics report: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save analytics report to cache")
		}
	}()

	return res, nil
}
