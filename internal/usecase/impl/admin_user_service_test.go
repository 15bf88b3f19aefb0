package impl

import (
	"context"
	"math"
	"testing"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	mockRepo "vendo/internal/mocks/repository"
	"vendo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminUserServiceFixtures struct {
	service   usecase.AdminUserUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
}

func createTestAdminUserService(t *testing.T) adminUserServiceFixtures {
	fx := adminUserServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}
	fx.service = NewAdminUserService(AdminUserServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestAdminUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    usecase.ListUsersInput
		wantPage repository.Page
		wantSize int
	}{
		{name: "defaults", input: usecase.ListUsersInput{}, wantPage: repository.Page{Offset: 0, Limit: 20}, wantSize: 20},
		{name: "third page", input: usecase.ListUsersInput{Page: 3, PageSize: 10}, wantPage: repository.Page{Offset: 20, Limit: 10}, wantSize: 10},
		{name: "page size capped", input: usecase.ListUsersInput{Page: 1, PageSize: 1000}, wantPage: repository.Page{Offset: 0, Limit: 100}, wantSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminUserService(t)
			users := []*entity.User{{ID: 1, Username: "ann"}}
			fx.userRepo.EXPECT().List(ctx, tt.wantPage).Return(users, 31, nil)

			out, err := fx.service.ListUsers(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, users, out.Users)
			assert.Equal(t, int64(31), out.Total)
			assert.Equal(t, tt.wantSize, out.PageSize)
		})
	}
}

func TestAdminUserService_ListUsers_PageOutOfRange(t *testing.T) {
	fx := createTestAdminUserService(t)

	out, err := fx.service.ListUsers(context.Background(), usecase.ListUsersInput{Page: math.MaxInt, PageSize: 100})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, out)
}

func TestAdminUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdminUserService(t)
	fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, 9)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdminUserService(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)

	current := &entity.User{ID: 9, Username: "ann", Email: "ann@example.com"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(current, nil)
	fx.userRepo.EXPECT().Update(ctx, current).Return(nil)

	got, err := fx.service.UpdateUser(ctx, 9, entity.UserPatch{FullName: ptr("Ann Lee")})

	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", got.FullName)
}

func TestAdminUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		fx := createTestAdminUserService(t)
		fx.userRepo.EXPECT().Delete(ctx, int64(9)).Return(nil)

		assert.NoError(t, fx.service.DeleteUser(ctx, 9))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestAdminUserService(t)
		fx.userRepo.EXPECT().Delete(ctx, int64(9)).Return(repository.ErrUserNotFound)

		assert.ErrorIs(t, fx.service.DeleteUser(ctx, 9), domainerrors.ErrUserNotFound)
	})
}
