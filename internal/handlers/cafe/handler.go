package cafe

import (
	"net/http"

	"krown/infras/otel"
	"krown/internal/domains/cafe/model/dto"
	"krown/internal/domains/cafe/service"
	"krown/shared/constant"
	"krown/shared/validator"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cafe
	otel    otel.Otel
}

func New(service service.Cafe, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cafe", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCafe)
		routerGroup.Put("/", handler.UpdateCafe)
		routerGroup.Get("/images", handler.GetImages)
		routerGroup.Get("/menu-images", handler.GetMenuImages)
	})
}

// GetCafe returns the operator's café profile.
// @Summary Get the café profile
// @Tags Cafe
// @Produce json
// @Success 200 {object} response.Data[model.Cafe] "Café profile"
// @Failure 502 {object} response.Error
// @Router /v1/cafe [get]
// @Security BearerAuth
func (handler *Handler) GetCafe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCafe")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	cafe, err := handler.service.Get(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafe profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, cafe)
}

// UpdateCafe replaces the café profile.
// @Summary Update the café profile
// @Description Update café details, working days and slot categories. A UPI ID already used by another café is rejected.
// @Tags Cafe
// @Accept json
// @Produce json
// @Param request body dto.UpdateCafeRequest true "Update Cafe Request"
// @Success 200 {object} response.Message "Café updated"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/cafe [put]
// @Security BearerAuth
func (handler *Handler) UpdateCafe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCafe")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	req := dto.UpdateCafeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	message, err := handler.service.Update(ctx, cafeID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cafe profile")

		response.WithError(writer, err)

		return
	}

	if message == constant.Empty {
		message = "Cafe updated successfully"
	}

	response.WithMessage(writer, http.StatusOK, message)
}

// GetImages lists the café's main images.
// @Summary List main café images
// @Tags Cafe
// @Produce json
// @Success 200 {object} response.Data[[]model.Image] "Main images"
// @Failure 502 {object} response.Error
// @Router /v1/cafe/images [get]
// @Security BearerAuth
func (handler *Handler) GetImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	images, err := handler.service.Images(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafe images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, images)
}

// GetMenuImages lists the café's menu images.
// @Summary List menu images
// @Tags Cafe
// @Produce json
// @Success 200 {object} response.Data[[]model.Image] "Menu images"
// @Failure 502 {object} response.Error
// @Router /v1/cafe/menu-images [get]
// @Security BearerAuth
func (handler *Handler) GetMenuImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuImages")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	images, err := handler.service.MenuImages(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cafe menu images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, images)
}
