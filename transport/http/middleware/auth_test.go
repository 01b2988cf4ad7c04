package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "krown/infras/otel/mocks"
	sessionMocks "krown/internal/domains/session/mocks"
	"krown/internal/domains/session/model"
	"krown/permissions"
	"krown/shared/constant"
	"krown/shared/failure"
	"krown/transport/http/middleware"
)

type errorBody struct {
	Error    *string `json:"error"`
	Redirect string  `json:"redirect"`
}

func permissionFixture() *permissions.PermissionData {
	return &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Roles: []string{"cafe_admin"}, Path: "/v1/bookings/", Method: http.MethodGet},
			{Roles: []string{"cafe_admin", "cafe_staff"}, Path: "/v1/redeems/", Method: http.MethodGet},
			{Path: "/health", Method: http.MethodGet, Skip: true},
		},
	}
}

func newRouter(t *testing.T, session *sessionMocks.MockSession, captured *http.Request) *chi.Mux {
	t.Helper()

	auth := middleware.NewAuthMiddleware(session, otelMocks.NewOtel(), permissionFixture())

	router := chi.NewRouter()
	router.Use(auth.Auth)

	echo := func(writer http.ResponseWriter, request *http.Request) {
		if captured != nil {
			*captured = *request
		}

		writer.WriteHeader(http.StatusOK)
	}

	router.Get("/v1/bookings/", echo)
	router.Get("/v1/redeems/", echo)
	router.Get("/health", echo)

	return router
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody

	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestAuthMissingCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	router := newRouter(t, session, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, constant.RedirectLogin, decodeError(t, recorder).Redirect)
}

func TestAuthRejectedCredentialRedirectsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	session.EXPECT().
		Resolve(gomock.Any()).
		Return(model.Operator{}, failure.Unauthorized("session expired"))

	router := newRouter(t, session, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer expired-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, constant.RedirectLogin, decodeError(t, recorder).Redirect)
}

func TestAuthTransientResolveFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	session.EXPECT().
		Resolve(gomock.Any()).
		Return(model.Operator{}, failure.BadGateway("upstream unreachable"))

	router := newRouter(t, session, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer valid-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Empty(t, decodeError(t, recorder).Redirect)
}

func TestAuthUnknownRoleRedirectsToNotAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	session.EXPECT().
		Resolve(gomock.Any()).
		Return(model.Operator{}, failure.Forbidden("unrecognized role"))

	router := newRouter(t, session, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer customer-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, constant.RedirectNotAuthorized, decodeError(t, recorder).Redirect)
}

func TestAuthStaffDeniedRedirectsToRedeemDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	staff := model.Operator{
		UserID:   "user-1",
		UserRole: model.RoleCafeStaff,
		CafeID:   "cafe-1",
	}

	session.EXPECT().Resolve(gomock.Any()).Return(staff, nil)
	session.EXPECT().
		Authorize(staff, []model.Role{model.RoleCafeAdmin}).
		Return(failure.Forbidden("role not allowed"))

	router := newRouter(t, session, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer staff-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, constant.RedirectStaffLanding, decodeError(t, recorder).Redirect)
}

func TestAuthAllowedOperatorReachesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	staff := model.Operator{
		UserID:   "user-1",
		UserRole: model.RoleCafeStaff,
		CafeID:   "cafe-1",
	}

	session.EXPECT().Resolve(gomock.Any()).Return(staff, nil)
	session.EXPECT().
		Authorize(staff, []model.Role{model.RoleCafeAdmin, model.RoleCafeStaff}).
		Return(nil)

	var captured http.Request
	router := newRouter(t, session, &captured)

	request := httptest.NewRequest(http.MethodGet, "/v1/redeems/", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer staff-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	ctx := captured.Context()
	assert.Equal(t, "user-1", ctx.Value(constant.ContextKeyUserID))
	assert.Equal(t, string(model.RoleCafeStaff), ctx.Value(constant.ContextKeyUserRole))
	assert.Equal(t, "cafe-1", ctx.Value(constant.ContextKeyCafeID))
}

func TestAuthSkippedRouteBypassesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	session.EXPECT().Resolve(gomock.Any()).Times(0)

	router := newRouter(t, session, nil)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthUnknownRouteDeniedByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := sessionMocks.NewMockSession(ctrl)

	admin := model.Operator{
		UserID:   "user-2",
		UserRole: model.RoleCafeAdmin,
		CafeID:   "cafe-1",
	}

	session.EXPECT().Resolve(gomock.Any()).Return(admin, nil)
	session.EXPECT().
		Authorize(admin, []model.Role{}).
		Return(failure.Forbidden("role not allowed"))

	auth := middleware.NewAuthMiddleware(session, otelMocks.NewOtel(), &permissions.PermissionData{})

	router := chi.NewRouter()
	router.Use(auth.Auth)
	router.Get("/v1/unlisted", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/v1/unlisted", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer admin-token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, constant.RedirectNotAuthorized, decodeError(t, recorder).Redirect)
}
