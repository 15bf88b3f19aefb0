package impl

import (
	"context"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/errors"
)

// ensureUsernameFree fails with ErrUserAlreadyExists when username is held by
// a user or an admin.
func ensureUsernameFree(ctx context.Context, repoFactory repository.RepositoryFactory, username string) error {
	_, err := repoFactory.UserRepo().FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username")
	}

	isAdmin, err := repoFactory.AdminRepo().ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if isAdmin {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already taken")
	}

	return nil
}

// applyUserPatch writes patch onto user inside an open transaction, checking
// that a changed email or username stays unique.
func applyUserPatch(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User, patch entity.UserPatch) error {
	userRepo := repoFactory.UserRepo()

	if patch.Email != nil && *patch.Email != user.Email {
		exists, err := userRepo.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
	}

	if patch.Username != nil && *patch.Username != user.Username {
		if err := ensureUsernameFree(ctx, repoFactory, *patch.Username); err != nil {
			return err
		}
	}

	patch.Apply(user)

	if err := userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to find user")
}
