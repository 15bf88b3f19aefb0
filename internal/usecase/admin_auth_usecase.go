package usecase

import (
	"context"

	"vendo/internal/domain/entity"
)

// SeedAdminInput is the bootstrap admin account created at startup.
type SeedAdminInput struct {
	Username string
	Email    string
	Password string
}

// AdminAuthUsecase covers back-office sessions.
type AdminAuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error

	// SeedAdmin creates the admin unless the username or email is taken.
	// It reports whether a row was created.
	SeedAdmin(ctx context.Context, input SeedAdminInput) (bool, error)
}
