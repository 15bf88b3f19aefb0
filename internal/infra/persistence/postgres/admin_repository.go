package postgres

import (
	"context"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/errors"
	"vendo/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const existsAdminByUsernameSQL = `SELECT EXISTS(SELECT 1 FROM admins WHERE username = ?)`

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository returns a repository.AdminRepository backed by db.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// ExistsByUsername runs the membership query against the store on every call.
func (repo *adminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := repo.db.WithContext(ctx).Raw(existsAdminByUsernameSQL, username).Row().Scan(&exists); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check admin membership")
	}

	return exists, nil
}

func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Omit("password_hash").
		Where("username = ?", username).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find admin")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Select("id", "email", "username", "password_hash").
		Where("email = ?", email).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load admin credential")
	}

	return &entity.Credential{
		PrincipalID:  adminM.ID,
		Kind:         entity.PrincipalAdmin,
		Email:        adminM.Email,
		Username:     adminM.Username,
		PasswordHash: adminM.PasswordHash,
	}, nil
}

func (repo *adminRepository) EnsureAdmin(ctx context.Context, admin *entity.Admin, passwordHash string) (bool, error) {
	adminM := &model.AdminModel{
		Email:        admin.Email,
		Username:     admin.Username,
		PasswordHash: passwordHash,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(adminM)
	if result.Error != nil {
		// ON CONFLICT covers admins' own keys; a username held by a user is raised by trigger.
		if isUniqueConstraintViolation(result.Error) {
			return false, domainerrors.ErrUserAlreadyExists.WrapMessage("admin username taken")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to seed admin")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return true, nil
}

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:        data.ID,
		Email:     data.Email,
		Username:  data.Username,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
