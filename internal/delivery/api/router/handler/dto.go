package handler

import (
	"time"

	"vendo/internal/domain/entity"
)

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// UserPatchRequest is a partial user update. Omitted fields are left unchanged.
type UserPatchRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Address  *string `json:"address" validate:"omitempty,max=500"`
}

func (r UserPatchRequest) toPatch() entity.UserPatch {
	return entity.UserPatch{
		Email:    r.Email,
		Username: r.Username,
		FullName: r.FullName,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTokenResponse(p *entity.TokenPair) TokenResponse {
	tokenType := p.TokenType
	if tokenType == "" {
		tokenType = entity.BearerScheme
	}

	return TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    tokenType,
		ExpiresAt:    p.AccessExpiresAt,
	}
}
