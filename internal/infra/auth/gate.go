package auth

import (
	"context"
	"log/slog"
	"time"

	"vendo/config"
	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	"vendo/internal/domain/repository"
	"vendo/internal/domain/service"

	"go.uber.org/fx"
)

const defaultAdminCheckTimeout = 2 * time.Second

// authorizationGate turns a bearer token and a route scope into exactly one
// AccessDecision. Membership is read from the admins store on every call.
type authorizationGate struct {
	tokens  service.TokenService
	admins  repository.AdminRepository
	timeout time.Duration
	logger  *slog.Logger
}

// GateParams holds dependencies for the authorization gate, injected by Fx.
type GateParams struct {
	fx.In

	TokenService service.TokenService
	AdminRepo    repository.AdminRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthorizationGate is the constructor for the authorization gate.
func NewAuthorizationGate(params GateParams) service.AuthorizationGate {
	timeout := defaultAdminCheckTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AdminCheckTimeout > 0 {
		timeout = params.Config.Auth.AdminCheckTimeout
	}

	return &authorizationGate{
		tokens:  params.TokenService,
		admins:  params.AdminRepo,
		timeout: timeout,
		logger:  params.Logger,
	}
}

func (g *authorizationGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// IsAdmin reports whether subject has a row in the admins store. A failing or
// slow store denies.
func (g *authorizationGate) IsAdmin(ctx context.Context, subject string) bool {
	if subject == "" {
		return false
	}

	checkCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	isAdmin, err := g.admins.ExistsByUsername(checkCtx, subject)
	if err != nil {
		g.log(ctx).Error("Admin membership check failed, denying",
			slog.String("subject", subject),
			slog.Duration("timeout", g.timeout),
			slog.Any("error", err),
		)

		return false
	}

	return isAdmin
}

// Authorize verifies bearer as an access token, then applies scope.
func (g *authorizationGate) Authorize(ctx context.Context, bearer string, scope entity.AccessScope) (entity.AccessDecision, service.Claims) {
	claims, err := g.tokens.ValidateTokenType(bearer, entity.TokenTypeAccess)
	if err != nil {
		g.log(ctx).Debug("Access decision", slog.String("outcome", entity.Rejected.String()), slog.String("scope", scope.String()))

		return entity.AccessDecision{Outcome: entity.Rejected}, nil
	}

	subject := claims.Subject()
	decision := entity.AccessDecision{Outcome: entity.Forbidden, Subject: subject}

	switch scope {
	case entity.ScopeUser:
		decision.Outcome = entity.UserAuthorized
		decision.Role = entity.RoleUser
	case entity.ScopeAdmin:
		if g.IsAdmin(ctx, subject) {
			decision.Outcome = entity.AdminAuthorized
			decision.Role = entity.RoleAdmin
		}
	}

	g.log(ctx).Debug("Access decision",
		slog.String("outcome", decision.Outcome.String()),
		slog.String("scope", scope.String()),
		slog.String("subject", subject),
	)

	return decision, claims
}
