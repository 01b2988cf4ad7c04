package analytics

import (
	"net/http"

	"krown/infras/otel"
	"krown/internal/domains/analytics/model"
	"krown/internal/domains/analytics/service"
	"krown/shared/constant"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReport)
	})
}

// GetReport returns the café booking analytics for a time range.
// @Summary Get booking analytics
// @Tags Analytics
// @Produce json
// @Param range query string false "Time range (7d, 10d, 1m, 3m, 6m, 1y)"
// @Param search query string false "Search filter"
// @Success 200 {object} response.Data[model.Report] "Analytics report"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	rng := model.Range(request.URL.Query().Get(constant.RequestParamRange))
	search := request.URL.Query().Get(constant.RequestParamSearch)

	report, err := handler.service.Report(ctx, cafeID, rng, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, report)
}
