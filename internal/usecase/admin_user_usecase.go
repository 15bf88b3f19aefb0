package usecase

import (
	"context"

	"vendo/internal/domain/entity"
)

// ListUsersInput selects a 1-based page of users.
type ListUsersInput struct {
	Page     int
	PageSize int
}

// ListUsersOutput is one page of users plus the total count.
type ListUsersOutput struct {
	Users    []*entity.User
	Total    int64
	Page     int
	PageSize int
}

// AdminUserUsecase is user management for admins.
type AdminUserUsecase interface {
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
