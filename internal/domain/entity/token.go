package entity

import "time"

// TokenType is carried in the "type" claim of every issued token.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// String returns the string representation of the TokenType.
func (t TokenType) String() string {
	return string(t)
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
	TokenType       string
}

// BearerScheme is the token_type reported to clients.
const BearerScheme = "bearer"
