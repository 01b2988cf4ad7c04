package router

import (
	"krown/internal/handlers/analytics"
	"krown/internal/handlers/booking"
	"krown/internal/handlers/cafe"
	"krown/internal/handlers/gallery"
	"krown/internal/handlers/item"
	"krown/internal/handlers/notification"
	"krown/internal/handlers/redeem"
	"krown/internal/handlers/session"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Session      session.Handler
	Booking      booking.Handler
	Notification notification.Handler
	Redeem       redeem.Handler
	Item         item.Handler
	Gallery      gallery.Handler
	Cafe         cafe.Handler
	Analytics    analytics.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Redeem.Router(routerGroup)
		r.DomainHandlers.Item.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Cafe.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
