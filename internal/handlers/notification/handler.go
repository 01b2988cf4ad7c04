package notification

import (
	"net/http"

	"krown/infras/otel"
	"krown/internal/domains/notification/model/dto"
	"krown/internal/domains/notification/service"
	"krown/shared/constant"
	"krown/shared/validator"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHistory)
		routerGroup.Post("/send", handler.Send)
	})
}

// Send pushes one notification for a booking.
// @Summary Send a booking notification
// @Description Send a push message for a booking; each booking is notified at most once.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendRequest true "Send Notification Request"
// @Success 200 {object} response.Message "Notification sent"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/notifications/send [post]
// @Security BearerAuth
func (handler *Handler) Send(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Send")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	req := dto.SendRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Send(ctx, cafeID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send notification")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Notification sent successfully")
}

// GetHistory lists notifications previously sent for a booking.
// @Summary Notification history
// @Tags Notification
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Param user_id query string true "Recipient user ID"
// @Success 200 {object} response.Data[dto.HistoryResponse] "Notification log"
// @Failure 400 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	params := dto.HistoryParams{
		BookingID: request.URL.Query().Get("booking_id"),
		UserID:    request.URL.Query().Get("user_id"),
	}

	if err := validator.ValidateStruct(&params); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate history params")

		response.WithError(writer, err)

		return
	}

	notifications, err := handler.service.History(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notification history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.HistoryResponse{Notifications: notifications})
}
