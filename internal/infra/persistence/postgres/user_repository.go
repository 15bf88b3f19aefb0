package postgres

import (
	"context"
	"time"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/errors"
	"vendo/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const (
	existsUserByEmailSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
	defaultListLimit     = 50
	maxListLimit         = 200
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a repository.UserRepository backed by db.
// db may be a transaction handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return mapUserWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) findOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Omit("password_hash").
		Where(cond, arg).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Select("id", "email", "username", "password_hash").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user credential")
	}

	return &entity.Credential{
		PrincipalID:  userM.ID,
		Kind:         entity.PrincipalUser,
		Email:        userM.Email,
		Username:     userM.Username,
		PasswordHash: userM.PasswordHash,
	}, nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := repo.db.WithContext(ctx).Raw(existsUserByEmailSQL, email).Row().Scan(&exists); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user email")
	}

	return exists, nil
}

func (repo *userRepository) List(ctx context.Context, page repository.Page) ([]*entity.User, int64, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset := max(page.Offset, 0)

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Omit("password_hash").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&userMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, total, nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Updates(map[string]any{
			"email":      user.Email,
			"username":   user.Username,
			"full_name":  user.FullName,
			"phone":      user.Phone,
			"address":    user.Address,
			"updated_at": now,
		})
	if result.Error != nil {
		return mapUserWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func mapUserWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
	case isCheckConstraintViolation(err), isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("user violates a table constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Username:  data.Username,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Username:  data.Username,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
