package item

import (
	"net/http"
	"strconv"

	"krown/infras/otel"
	"krown/internal/domains/item/model/dto"
	"krown/internal/domains/item/service"
	"krown/shared/constant"
	"krown/shared/failure"
	"krown/shared/validator"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Put("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// GetItems lists the café menu.
// @Summary List menu items
// @Tags Item
// @Produce json
// @Success 200 {object} response.Data[[]model.Item] "Menu items"
// @Failure 502 {object} response.Error
// @Router /v1/items [get]
// @Security BearerAuth
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	items, err := handler.service.List(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// CreateItem adds a menu item.
// @Summary Create a menu item
// @Tags Item
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Message "Item created"
// @Failure 400 {object} response.Error
// @Router /v1/items [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, cafeID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Item created successfully")
}

// UpdateItem edits a menu item.
// @Summary Update a menu item
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Message "Item updated"
// @Failure 400 {object} response.Error
// @Router /v1/items/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	itemID, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("item id must be numeric"))

		return
	}

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, cafeID, itemID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Item updated successfully")
}

// DeleteItem removes a menu item.
// @Summary Delete a menu item
// @Tags Item
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} response.Message "Item deleted"
// @Failure 400 {object} response.Error
// @Router /v1/items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	itemID, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("item id must be numeric"))

		return
	}

	if err := handler.service.Delete(ctx, cafeID, itemID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Item deleted successfully")
}
