package session

import (
	"net/http"

	"krown/infras/otel"
	"krown/internal/domains/session/service"
	"krown/shared/constant"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/session", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.Me)
	})
}

// Me returns the operator profile behind the bearer credential.
// @Summary Resolve the current operator
// @Description Resolve the operator profile for the presented credential.
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[model.Operator] "Operator profile"
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/session/me [get]
// @Security BearerAuth
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	operator, err := handler.service.Resolve(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve operator")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, operator)
}
