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

type adminAuthService struct {
	adminRepo    repository.AdminRepository
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminAuthServiceParams holds dependencies for adminAuthService, injected by Fx.
type AdminAuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAdminAuthService is the constructor for AdminAuthUsecase.
func NewAdminAuthService(params AdminAuthServiceParams) usecase.AdminAuthUsecase {
	return &adminAuthService{
		adminRepo:    params.AdminRepo,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *adminAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminAuthService) Login(ctx context.Context, input usecase.LoginInput) (*entity.TokenPair, error) {
	cred, err := srv.adminRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to load admin credential")
	}

	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	tokens, err := srv.tokenService.GenerateTokens(cred.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", cred.Username))

	return tokens, nil
}

func (srv *adminAuthService) Logout(ctx context.Context, accessToken string) error {
	return logoutAccessToken(ctx, srv.log(ctx), srv.tokenService, accessToken)
}

func (srv *adminAuthService) SeedAdmin(ctx context.Context, input usecase.SeedAdminInput) (bool, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return false, errors.Wrap(err, "seed admin password rejected")
	}

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return false, domainerrors.ErrUserAlreadyExists.WrapMessage("seed admin username belongs to a user")
	case !errors.Is(err, repository.ErrUserNotFound):
		return false, errors.Wrap(err, "failed to check seed admin username")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return false, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Admin{Email: input.Email, Username: input.Username}
	created, err := srv.adminRepo.EnsureAdmin(ctx, admin, hash)
	if err != nil {
		return false, errors.Wrap(err, "failed to seed admin")
	}

	if created {
		srv.log(ctx).Info("Seeded admin account", slog.String("username", input.Username))
	} else {
		srv.log(ctx).Debug("Admin account already present", slog.String("username", input.Username))
	}

	return created, nil
}
