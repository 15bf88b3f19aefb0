package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/errors"
	"vendo/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// maxPage keeps (page-1)*pageSize far from int overflow.
	maxPage = 1_000_000
)

type adminUserService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// AdminUserServiceParams holds dependencies for adminUserService, injected by Fx.
type AdminUserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewAdminUserService is the constructor for AdminUserUsecase.
func NewAdminUserService(params AdminUserServiceParams) usecase.AdminUserUsecase {
	return &adminUserService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *adminUserService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminUserService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	if input.Page > maxPage {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("page must be at most %d", maxPage))
	}

	page := max(input.Page, 1)
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	users, total, err := srv.userRepo.List(ctx, repository.Page{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{
		Users:    users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (srv *adminUserService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

func (srv *adminUserService) UpdateUser(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, id)
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
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("Admin updated user", slog.Int64("userID", id))

	return updated, nil
}

func (srv *adminUserService) DeleteUser(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Admin deleted user", slog.Int64("userID", id))

	return nil
}
