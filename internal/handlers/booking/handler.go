package booking

import (
	"errors"
	"net/http"

	"krown/infras/otel"
	"krown/internal/domains/booking/model/dto"
	"krown/internal/domains/booking/service"
	"krown/shared/constant"
	"krown/shared/validator"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	liveSearch service.LiveSearch
	otel       otel.Otel
}

func New(service service.Booking, liveSearch service.LiveSearch, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		liveSearch: liveSearch,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/search", handler.SearchBookings)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Patch("/slots/availability", handler.ToggleSlot)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
	})
}

// GetBookings lists the café's bookings in console order.
// @Summary List bookings
// @Description List the operator's café bookings, open decisions first.
// @Tags Booking
// @Produce json
// @Param view query string false "View window (recent or past)"
// @Param search query string false "Free-text search over guest name and mobile"
// @Success 200 {object} response.Data[dto.BookingResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	params := dto.ListParams{
		View:   request.URL.Query().Get(constant.RequestParamView),
		Search: request.URL.Query().Get(constant.RequestParamSearch),
	}

	if err := validator.ValidateStruct(&params); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate list params")

		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.List(ctx, cafeID, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.BookingResponse{Bookings: bookings})
}

// SearchBookings runs a debounced live search. Superseded queries return
// 204 so the console simply keeps its current view.
// @Summary Live-search bookings
// @Description Debounced search; only the operator's newest query returns data.
// @Tags Booking
// @Produce json
// @Param search query string true "Search text"
// @Param view query string false "View window (recent or past)"
// @Success 200 {object} response.Data[dto.BookingResponse] "Matching bookings"
// @Success 204 "Superseded by a newer query"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/search [get]
// @Security BearerAuth
func (handler *Handler) SearchBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)
	operatorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := dto.ListParams{
		View:   request.URL.Query().Get(constant.RequestParamView),
		Search: request.URL.Query().Get(constant.RequestParamSearch),
	}

	bookings, err := handler.liveSearch.Search(ctx, operatorID, cafeID, params)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			writer.WriteHeader(http.StatusNoContent)

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.BookingResponse{Bookings: bookings})
}

// GetBookingByID returns one booking of the café.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.Booking] "Booking"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)
	bookingID := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Find(ctx, cafeID, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateStatus applies an accept or reject decision to an open booking.
// @Summary Update booking status
// @Description Accept or reject a booking that is still pending or initiated.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Message "Booking status updated"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)
	bookingID := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, cafeID, bookingID, req.Status); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking status updated successfully")
}

// GetSlots lists the café's slots grouped by category.
// @Summary List slots
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.SlotGroup] "Slot groups"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	groups, err := handler.service.Slots(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, groups)
}

// ToggleSlot flips availability for one slot hour.
// @Summary Toggle slot availability
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ToggleSlotRequest true "Slot toggle"
// @Success 200 {object} response.Message "Slot availability updated"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/slots/availability [patch]
// @Security BearerAuth
func (handler *Handler) ToggleSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleSlot")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	req := dto.ToggleSlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ToggleSlot(ctx, cafeID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle slot availability")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Slot availability updated successfully")
}
