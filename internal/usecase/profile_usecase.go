package usecase

import (
	"context"

	"vendo/internal/domain/entity"
)

// ProfileUsecase reads and edits the profile of the authenticated user,
// identified by the token subject.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, subject string) (*entity.User, error)
	UpdateProfile(ctx context.Context, subject string, patch entity.UserPatch) (*entity.User, error)
}
