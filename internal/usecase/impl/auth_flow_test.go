package impl

import (
	"context"
	"testing"
	"time"

	"vendo/config"
	"vendo/internal/domain/entity"
	"vendo/internal/domain/repository"
	"vendo/internal/infra/auth"
	mockRepo "vendo/internal/mocks/repository"
	"vendo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterThenLogin_AccessTokenNamesUser(t *testing.T) {
	ctx := context.Background()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost, &config.PasswordStrengthConfig{MinLength: 6})
	tokens, err := auth.NewJWTServiceWithOptions(config.TokenConfig{
		Secret:     "register_then_login_secret_key_for_tests",
		Algorithm:  "HS256",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	input := registerInput()
	var storedHash string

	expectTx(txManager, factory)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AdminRepo().Return(adminRepo)
	userRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
	userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	adminRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, u *entity.User, hash string) error {
			u.ID = 7
			storedHash = hash

			return nil
		})

	user, err := svc.Register(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, storedHash)
	assert.NotEqual(t, input.Password, storedHash)

	userRepo.EXPECT().FindCredentialByEmail(ctx, input.Email).
		RunAndReturn(func(context.Context, string) (*entity.Credential, error) {
			return &entity.Credential{
				PrincipalID:  user.ID,
				Kind:         entity.PrincipalUser,
				Email:        user.Email,
				Username:     user.Username,
				PasswordHash: storedHash,
			}, nil
		})

	pair, err := svc.Login(ctx, usecase.LoginInput{Email: input.Email, Password: input.Password})
	require.NoError(t, err)

	claims, err := tokens.ValidateTokenType(pair.AccessToken, entity.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, input.Username, claims.Subject())

	_, err = tokens.ValidateTokenType(pair.RefreshToken, entity.TokenTypeRefresh)
	require.NoError(t, err)
}
