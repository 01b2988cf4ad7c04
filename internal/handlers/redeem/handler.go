package redeem

import (
	"net/http"

	"krown/infras/otel"
	"krown/internal/domains/redeem/model"
	"krown/internal/domains/redeem/model/dto"
	"krown/internal/domains/redeem/service"
	"krown/shared/constant"
	"krown/shared/validator"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Redeem
	otel    otel.Otel
}

func New(service service.Redeem, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/redeems", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRedemptions)
		routerGroup.Post("/", handler.Initiate)
		routerGroup.Get("/user", handler.GetUserRedemptions)
		routerGroup.Post("/confirm", handler.Confirm)
	})
}

// Initiate starts a redemption for a customer at the counter.
// @Summary Initiate a redemption
// @Description Create a redemption; the redeem code is relayed to the customer out-of-band.
// @Tags Redeem
// @Accept json
// @Produce json
// @Param request body dto.InitiateRequest true "Initiate Redemption Request"
// @Success 201 {object} response.Message "Redemption initiated"
// @Failure 422 {object} response.Error
// @Router /v1/redeems [post]
// @Security BearerAuth
func (handler *Handler) Initiate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Initiate")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	req := dto.InitiateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	message, err := handler.service.Initiate(ctx, cafeID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate redemption")

		response.WithError(writer, err)

		return
	}

	if message == constant.Empty {
		message = "Redemption initiated successfully"
	}

	response.WithMessage(writer, http.StatusCreated, message)
}

// GetUserRedemptions finds a customer's redemptions by mobile number.
// @Summary Fetch a user's redemptions
// @Tags Redeem
// @Produce json
// @Param userMobile query string true "Customer mobile number"
// @Param type query string false "State filter (initiated or confirmed)"
// @Success 200 {object} response.Data[dto.RedemptionsResponse] "Redemptions"
// @Failure 422 {object} response.Error
// @Router /v1/redeems/user [get]
// @Security BearerAuth
func (handler *Handler) GetUserRedemptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserRedemptions")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	params := dto.ForUserParams{
		UserMobileNo: request.URL.Query().Get(constant.RequestParamMobile),
		State:        model.State(request.URL.Query().Get(constant.RequestParamType)),
	}

	if err := validator.ValidateStruct(&params); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate redemption params")

		response.WithError(writer, err)

		return
	}

	redemptions, err := handler.service.ForUser(ctx, cafeID, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user redemptions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.RedemptionsResponse{Redemptions: redemptions})
}

// Confirm completes a redemption with the customer's code.
// @Summary Confirm a redemption
// @Tags Redeem
// @Accept json
// @Produce json
// @Param request body dto.ConfirmRequest true "Confirm Redemption Request"
// @Success 200 {object} response.Message "Redemption confirmed"
// @Failure 409 {object} response.Error
// @Router /v1/redeems/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	req := dto.ConfirmRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	message, err := handler.service.Confirm(ctx, cafeID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm redemption")

		response.WithError(writer, err)

		return
	}

	if message == constant.Empty {
		message = "Redemption confirmed successfully"
	}

	response.WithMessage(writer, http.StatusOK, message)
}

// GetRedemptions lists the café's redemptions split by state.
// @Summary List café redemptions
// @Tags Redeem
// @Produce json
// @Success 200 {object} response.Data[dto.PartitionedResponse] "Redemptions by state"
// @Failure 502 {object} response.Error
// @Router /v1/redeems [get]
// @Security BearerAuth
func (handler *Handler) GetRedemptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRedemptions")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	partitioned, err := handler.service.ListPartitioned(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafe redemptions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, partitioned)
}
