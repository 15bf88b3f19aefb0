// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vendo/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Phone    string
	Address  string
}

// LoginInput defines the data required for a principal to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase covers the storefront user's account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login returns ErrInvalidCredentials for an unknown email and for a wrong
	// password alike.
	Login(ctx context.Context, input LoginInput) (*entity.TokenPair, error)

	// Refresh exchanges a refresh token for a new pair while the principal still exists.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Logout verifies the access token. Tokens stay valid until they expire.
	Logout(ctx context.Context, accessToken string) error
}
