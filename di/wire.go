//go:build wireinject
// +build wireinject

package di

import (
	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/infras/redis"
	"krown/infras/s3"
	"krown/permissions"
	"krown/shared/cache"
	"krown/transport/http"
	"krown/transport/http/middleware"
	"krown/transport/http/router"

	analyticsService "krown/internal/domains/analytics/service"
	bookingService "krown/internal/domains/booking/service"
	cafeService "krown/internal/domains/cafe/service"
	galleryService "krown/internal/domains/gallery/service"
	itemService "krown/internal/domains/item/service"
	notificationService "krown/internal/domains/notification/service"
	redeemService "krown/internal/domains/redeem/service"
	sessionService "krown/internal/domains/session/service"

	analyticsHandler "krown/internal/handlers/analytics"
	bookingHandler "krown/internal/handlers/booking"
	cafeHandler "krown/internal/handlers/cafe"
	galleryHandler "krown/internal/handlers/gallery"
	itemHandler "krown/internal/handlers/item"
	notificationHandler "krown/internal/handlers/notification"
	redeemHandler "krown/internal/handlers/redeem"
	sessionHandler "krown/internal/handlers/session"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	s3.New,
	krown.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
	bookingService.NewLiveSearch,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var redeemDomain = wire.NewSet(
	redeemService.New,
)

var itemDomain = wire.NewSet(
	itemService.New,
)

var galleryDomain = wire.NewSet(
	galleryService.New,
)

var cafeDomain = wire.NewSet(
	cafeService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	bookingDomain,
	notificationDomain,
	redeemDomain,
	itemDomain,
	galleryDomain,
	cafeDomain,
	analyticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	sessionHandler.New,
	bookingHandler.New,
	notificationHandler.New,
	redeemHandler.New,
	itemHandler.New,
	galleryHandler.New,
	cafeHandler.New,
	analyticsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
