package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendo/internal/delivery/api/response"
	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	"vendo/internal/domain/service"
	mockSvc "vendo/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, gate service.AuthorizationGate, scope entity.AccessScope) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	m := NewAuthMiddleware(AuthMiddlewareParams{Gate: gate, Logger: logger})
	e.GET("/guarded", func(c echo.Context) error {
		subject, _ := GetSubject(c)
		decision, _ := deliverycontext.GetAccessDecision(c)

		return c.JSON(http.StatusOK, map[string]string{"subject": subject, "outcome": decision.Outcome.String()})
	}, m.RequireScope(scope))

	return e
}

func doGuarded(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestRequireScope_MissingToken(t *testing.T) {
	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer", "Bearer    "} {
		t.Run(header, func(t *testing.T) {
			gate := mockSvc.NewMockAuthorizationGate(t)
			e := newTestEcho(t, gate, entity.ScopeUser)

			rec := doGuarded(e, header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Code)
		})
	}
}

func TestRequireScope_Decisions(t *testing.T) {
	tests := []struct {
		name       string
		scope      entity.AccessScope
		decision   entity.AccessDecision
		wantStatus int
		wantCode   string
		wantBody   map[string]string
	}{
		{
			name:       "rejected token",
			scope:      entity.ScopeUser,
			decision:   entity.AccessDecision{Outcome: entity.Rejected},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "non-admin on admin route",
			scope:      entity.ScopeAdmin,
			decision:   entity.AccessDecision{Outcome: entity.Forbidden, Subject: "ann", Role: entity.RoleUser},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "user authorized",
			scope:      entity.ScopeUser,
			decision:   entity.AccessDecision{Outcome: entity.UserAuthorized, Subject: "ann", Role: entity.RoleUser},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"subject": "ann", "outcome": "user_authorized"},
		},
		{
			name:       "admin authorized",
			scope:      entity.ScopeAdmin,
			decision:   entity.AccessDecision{Outcome: entity.AdminAuthorized, Subject: "root", Role: entity.RoleAdmin},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"subject": "root", "outcome": "admin_authorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := mockSvc.NewMockAuthorizationGate(t)
			gate.EXPECT().Authorize(mock.Anything, "tok", tt.scope).
				Return(tt.decision, service.Claims{service.ClaimSubject: tt.decision.Subject}).
				Once()
			e := newTestEcho(t, gate, tt.scope)

			rec := doGuarded(e, "bearer tok")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRequireScope_DecidesEveryRequest(t *testing.T) {
	gate := mockSvc.NewMockAuthorizationGate(t)
	gate.EXPECT().Authorize(mock.Anything, "tok", entity.ScopeAdmin).
		Return(entity.AccessDecision{Outcome: entity.AdminAuthorized, Subject: "root", Role: entity.RoleAdmin}, nil).
		Once()
	gate.EXPECT().Authorize(mock.Anything, "tok", entity.ScopeAdmin).
		Return(entity.AccessDecision{Outcome: entity.Forbidden, Subject: "root", Role: entity.RoleUser}, nil).
		Once()
	e := newTestEcho(t, gate, entity.ScopeAdmin)

	first := doGuarded(e, "Bearer tok")
	second := doGuarded(e, "Bearer tok")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusForbidden, second.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "BEARER abc", want: "abc", ok: true},
		{header: "Token abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderAuthorization, tt.header)
			c := echo.New().NewContext(req, httptest.NewRecorder())

			got, ok := BearerToken(c)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
