package service

import (
	"context"

	"vendo/internal/domain/entity"
)

// AuthorizationGate decides, per request, whether a bearer may proceed.
type AuthorizationGate interface {
	// IsAdmin queries the admins store for subject. Store failures yield false.
	IsAdmin(ctx context.Context, subject string) bool

	// Authorize verifies bearer as an access token and, for admin scope, checks
	// membership. Verification always happens before the membership query.
	Authorize(ctx context.Context, bearer string, scope entity.AccessScope) (entity.AccessDecision, Claims)
}
