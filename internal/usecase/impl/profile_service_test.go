package impl

import (
	"context"
	"testing"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/errors"
	mockRepo "vendo/internal/mocks/repository"
	"vendo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	adminRepo *mockRepo.MockAdminRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		adminRepo: mockRepo.NewMockAdminRepository(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func (fx profileServiceFixtures) withTx() {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().AdminRepo().Return(fx.adminRepo).Maybe()
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found by subject", func(t *testing.T) {
		fx := createTestProfileService(t)
		want := &entity.User{ID: 1, Username: "ann", Email: "ann@example.com"}
		fx.userRepo.EXPECT().FindByUsername(ctx, "ann").Return(want, nil)

		got, err := fx.service.GetProfile(ctx, "ann")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown subject", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetProfile(ctx, "ghost")

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ann").Return(nil, errors.New("db error"))

		_, err := fx.service.GetProfile(ctx, "ann")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find user")
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateProfile(ctx, "ann", entity.UserPatch{})

		assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
	})

	t.Run("updates only the given fields", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.withTx()
		current := &entity.User{ID: 1, Username: "ann", Email: "ann@example.com", Phone: "111", Address: "old"}
		fx.userRepo.EXPECT().FindByUsername(ctx, "ann").Return(current, nil)
		fx.userRepo.EXPECT().Update(ctx, current).Return(nil)

		got, err := fx.service.UpdateProfile(ctx, "ann", entity.UserPatch{Phone: ptr("222")})

		require.NoError(t, err)
		assert.Equal(t, "222", got.Phone)
		assert.Equal(t, "old", got.Address)
		assert.Equal(t, "ann@example.com", got.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.withTx()
		fx.userRepo.EXPECT().FindByUsername(ctx, "ann").Return(&entity.User{ID: 1, Username: "ann", Email: "ann@example.com"}, nil)
		fx.userRepo.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(true, nil)

		_, err := fx.service.UpdateProfile(ctx, "ann", entity.UserPatch{Email: ptr("bob@example.com")})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("username held by admin", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.withTx()
		fx.userRepo.EXPECT().FindByUsername(ctx, "ann").Return(&entity.User{ID: 1, Username: "ann"}, nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "root").Return(nil, repository.ErrUserNotFound)
		fx.adminRepo.EXPECT().ExistsByUsername(ctx, "root").Return(true, nil)

		_, err := fx.service.UpdateProfile(ctx, "ann", entity.UserPatch{Username: ptr("root")})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("unknown subject", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.withTx()
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateProfile(ctx, "ghost", entity.UserPatch{Phone: ptr("1")})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
