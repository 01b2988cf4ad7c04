package middleware

import (
	"context"
	"net/http"
	"strings"

	"krown/infras/otel"
	"krown/internal/domains/session/model"
	sessionService "krown/internal/domains/session/service"
	"krown/permissions"
	"krown/shared/constant"
	"krown/shared/failure"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const bearerPrefix = "Bearer "

// Auth resolves the operator behind the bearer credential and enforces the
// per-route role allow-set.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	session    sessionService.Session
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(session sessionService.Session, otel otel.Otel, permission *permissions.PermissionData) Auth {
	return &authImpl{
		session:    session,
		otel:       otel,
		permission: permission,
	}
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		rctx := chi.RouteContext(ctx)
		method := request.Method
		path := rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		var permission permissions.Permission
		if m.permission != nil {
			permission = m.permission.FindPermissions(path, method)
		}

		if permission.Skip || (m.permission != nil && m.permission.Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		token := extractBearer(request.Header.Get(constant.RequestHeaderAuthorization))
		if token == constant.Empty {
			err := failure.Unauthorized("missing authorization header")
			response.WithErrorRedirect(writer, err, constant.RedirectLogin)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyCredential, token)

		operator, err := m.session.Resolve(ctx)
		if err != nil {
			// A rejected credential sends the console back to login and an
			// unrecognized role to the not-authorized page; a transient
			// resolver failure must do neither.
			switch failure.GetCode(err) {
			case http.StatusUnauthorized:
				response.WithErrorRedirect(writer, err, constant.RedirectLogin)
			case http.StatusForbidden:
				response.WithErrorRedirect(writer, err, constant.RedirectNotAuthorized)
			default:
				response.WithError(writer, err)
			}

			scope.TraceError(err)
			scope.End()

			return
		}

		if err := m.session.Authorize(operator, allowedRoles(permission)); err != nil {
			response.WithErrorRedirect(writer, err, operator.UserRole.Landing())

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, operator.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, string(operator.UserRole))
		ctx = context.WithValue(ctx, constant.ContextKeyCafeID, operator.CafeID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func extractBearer(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return constant.Empty
	}

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func allowedRoles(permission permissions.Permission) []model.Role {
	roles := make([]model.Role, 0, len(permission.Roles))
	for _, r := range permission.Roles {
		roles = append(roles, model.Role(r))
	}

	return roles
}
