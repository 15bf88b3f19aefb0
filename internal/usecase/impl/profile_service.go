package impl

import (
	"context"
	"log/slog"

	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/errors"
	"vendo/internal/usecase"

	"go.uber.org/fx"
)

type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for ProfileUsecase.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, subject string) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("subject", subject))

	user, err := srv.userRepo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// UpdateProfile changes only the fields set in patch. Changing the username
// changes the subject, so tokens issued for the old name stop resolving.
func (srv *profileService) UpdateProfile(ctx context.Context, subject string, patch entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	srv.log(ctx).Info("Updating user profile", slog.String("subject", subject))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByUsername(ctx, subject)
		if err != nil {
			return mapUserLookupError(err)
		}

		if err := applyUserPatch(ctx, repoFactory, user, patch); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}
