package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	bookingService "krown/internal/domains/booking/service"
	"krown/internal/domains/notification/model"
	"krown/internal/domains/notification/model/dto"
	"krown/shared/cache"
	"krown/shared/constant"
	"krown/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	pathPushSend      = "/push/send"
	pathNotifications = "/notifications"

	paramBookingID = "booking_id"
	paramUserID    = "user_id"
)

// templates are the fixed presets offered after a status decision. Callers
// may override title and body with free text.
var templates = map[model.Template]struct {
	title string
	body  string
}{
	model.TemplateAccepted: {
		title: "Booking confirmed",
		body:  "Great news! Your table booking has been accepted. We look forward to seeing you.",
	},
	model.TemplateRejected: {
		title: "Booking update",
		body:  "We are sorry, your table booking could not be accommodated this time.",
	},
	model.TemplateGeneric: {
		title: "A message from your cafe",
		body:  "There is an update regarding your booking. Please check the app for details.",
	},
}

type Notification interface {
	Send(ctx context.Context, cafeID string, req dto.SendRequest) error
	History(ctx context.Context, params dto.HistoryParams) ([]model.Notification, error)
}

type serviceImpl struct {
	client  krown.Client
	booking bookingService.Booking
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(client krown.Client, booking bookingService.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Notification {
	return &serviceImpl{
		client:  client,
		booking: booking,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Send pushes one message for a booking. A booking is notified at most
// once: the local check saves a round-trip for the common case, and the
// upstream enforces the same rule authoritatively for concurrent operators.
func (s *serviceImpl) Send(ctx context.Context, cafeID string, req dto.SendRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.booking.Find(ctx, cafeID, req.BookingID)
	if err != nil {
		return err
	}

	if booking.NotificationSent {
		return failure.Conflict("notification already sent for this booking") // nolint:wrapcheck
	}

	payload := s.buildPayload(cafeID, req)

	_, err = s.client.Post(ctx, pathPushSend, payload, nil)
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to send notification")

		return fmt.Errorf("failed to send notification: %w", err)
	}

	// The upstream flips notification_sent; drop cached booking views so
	// the next read observes it.
	s.booking.Refresh(ctx, cafeID)

	return nil
}

func (s *serviceImpl) History(ctx context.Context, params dto.HistoryParams) (res []model.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set(paramBookingID, params.BookingID)
	query.Set(paramUserID, params.UserID)

	var payload dto.HistoryResponse

	_, err = s.client.Get(ctx, pathNotifications, query, &payload)
	if err != nil {
		log.Error().Err(err).Str("bookingID", params.BookingID).Msg("failed to get notification history")

		return nil, fmt.Errorf("failed to get notification history: %w", err)
	}

	return payload.Notifications, nil
}

func (s *serviceImpl) buildPayload(cafeID string, req dto.SendRequest) dto.PushPayload {
	title, body := req.Title, req.Body

	preset, ok := templates[req.Template]
	if !ok {
		preset = templates[model.TemplateGeneric]
	}

	if title == constant.Empty {
		title = preset.title
	}

	if body == constant.Empty {
		body = preset.body
	}

	return dto.PushPayload{
		UserID: req.UserID,
		Title:  title,
		Body:   body,
		Data: map[string]any{
			"booking_id": req.BookingID,
			"cafe_id":    cafeID,
		},
	}
}
