// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vendo/internal/domain/entity"
	"vendo/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// Page bounds a list query.
type Page struct {
	Offset int
	Limit  int
}

// UserRepository defines the persistence operations for storefront users.
type UserRepository interface {
	// Create persists user together with its password hash and fills in ID and timestamps.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindCredentialByEmail loads login material. It is the only read that returns a hash.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// ExistsByEmail reports whether an account already uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns users ordered by ID and the total count.
	List(ctx context.Context, page Page) ([]*entity.User, int64, error)

	// Update writes the profile columns of user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. ErrUserNotFound when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
