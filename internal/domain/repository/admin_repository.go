package repository

import (
	"context"

	"vendo/internal/domain/entity"
	"vendo/internal/errors"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository reads and seeds the admins store.
type AdminRepository interface {
	// ExistsByUsername is the admin membership query. It never caches.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// FindCredentialByEmail loads admin login material.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// EnsureAdmin inserts admin unless the email or username already exists.
	// It reports whether a row was created.
	EnsureAdmin(ctx context.Context, admin *entity.Admin, passwordHash string) (bool, error)
}
