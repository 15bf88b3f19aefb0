// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/domain/service"
	"vendo/internal/errors"
	"vendo/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for the user-facing AuthUsecase.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user account. Usernames are shared with the admins
// namespace because both are token subjects.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:    input.Email,
		Username: input.Username,
		FullName: input.FullName,
		Phone:    input.Phone,
		Address:  input.Address,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		if err := ensureUsernameFree(ctx, repoFactory, input.Username); err != nil {
			return err
		}

		return userRepo.Create(ctx, user, hash)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return user, nil
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.TokenPair, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	cred, err := srv.userRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login credential")
	}

	// bcrypt runs outside any transaction.
	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.tokenService.GenerateTokens(cred.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in", slog.String("username", cred.Username))

	return tokens, nil
}

func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.ValidateTokenType(refreshToken, entity.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	subject := claims.Subject()
	known, err := principalExists(ctx, srv.userRepo, srv.adminRepo, subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up token subject")
	}
	if !known {
		srv.log(ctx).Warn("Refresh for unknown principal", slog.String("subject", subject))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("principal no longer exists")
	}

	tokens, err := srv.tokenService.GenerateTokens(subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return tokens, nil
}

func (srv *authService) Logout(ctx context.Context, accessToken string) error {
	return logoutAccessToken(ctx, srv.log(ctx), srv.tokenService, accessToken)
}

// principalExists reports whether subject still names a user or an admin.
func principalExists(ctx context.Context, users repository.UserRepository, admins repository.AdminRepository, subject string) (bool, error) {
	_, err := users.FindByUsername(ctx, subject)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, err
	}

	return admins.ExistsByUsername(ctx, subject)
}

// logoutAccessToken verifies the token and records the logout. Nothing is revoked.
func logoutAccessToken(ctx context.Context, logger *slog.Logger, tokens service.TokenService, accessToken string) error {
	claims, err := tokens.ValidateTokenType(accessToken, entity.TokenTypeAccess)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Logged out", slog.String("subject", claims.Subject()))

	return nil
}
