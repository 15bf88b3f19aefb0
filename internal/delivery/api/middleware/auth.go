// Package middleware contains the echo middleware of the API delivery.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Gate   service.AuthorizationGate
	Logger *slog.Logger
}

// AuthMiddleware guards routes with one gate decision per request.
type AuthMiddleware struct {
	gate   service.AuthorizationGate
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		gate:   params.Gate,
		logger: params.Logger,
	}
}

// RequireScope rejects the request unless the gate authorizes its bearer
// token for scope. The subject, claims and decision are stored on the
// echo context for handlers.
func (m *AuthMiddleware) RequireScope(scope entity.AccessScope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c)
			if !ok {
				return domainerrors.ErrMissingToken
			}

			ctx := c.Request().Context()
			decision, claims := m.gate.Authorize(ctx, token, scope)

			switch {
			case decision.Allowed():
				deliverycontext.SetPrincipal(c, decision, claims)

				return next(c)
			case decision.Outcome == entity.Forbidden:
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Access denied",
					slog.String("subject", decision.Subject),
					slog.String("scope", scope.String()),
				)

				return domainerrors.ErrForbidden
			default:
				return domainerrors.ErrInvalidToken
			}
		}
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

// GetSubject returns the subject stored by RequireScope.
func GetSubject(c echo.Context) (string, bool) {
	return deliverycontext.GetSubject(c)
}
