package service

import (
	"encoding/json"
	"maps"
	"time"

	"vendo/internal/domain/entity"
)

// Registered claim names used by vendo tokens.
const (
	ClaimSubject   = "sub"
	ClaimType      = "type"
	ClaimExpiresAt = "exp"
	ClaimIssuedAt  = "iat"
	ClaimID        = "jti"
	ClaimIssuer    = "iss"
)

// Claims is the flat key/value payload of a token.
type Claims map[string]any

// Subject returns the "sub" claim or "".
func (c Claims) Subject() string {
	s, _ := c[ClaimSubject].(string)

	return s
}

// Type returns the "type" claim or "".
func (c Claims) Type() entity.TokenType {
	s, _ := c[ClaimType].(string)

	return entity.TokenType(s)
}

// ExpiresAt returns the "exp" claim as a time, zero when absent.
func (c Claims) ExpiresAt() time.Time {
	return numericTime(c[ClaimExpiresAt])
}

// IssuedAt returns the "iat" claim as a time, zero when absent.
func (c Claims) IssuedAt() time.Time {
	return numericTime(c[ClaimIssuedAt])
}

// Clone returns a shallow copy of c.
func (c Claims) Clone() Claims {
	return maps.Clone(c)
}

func numericTime(v any) time.Time {
	switch n := v.(type) {
	case float64:
		return time.Unix(int64(n), 0).UTC()
	case int64:
		return time.Unix(n, 0).UTC()
	case int:
		return time.Unix(int64(n), 0).UTC()
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return time.Unix(i, 0).UTC()
		}
	}

	return time.Time{}
}

// TokenService issues and verifies signed, expiring bearer tokens.
// Verification is a pure function of the token, the signing secret and the clock.
type TokenService interface {
	// Issue signs claims with exp = now + ttl.
	Issue(claims Claims, ttl time.Duration) (string, error)

	// IssueAccessToken issues a short-lived access token for subject.
	IssueAccessToken(subject string) (string, error)

	// IssueRefreshToken issues a long-lived refresh token for subject.
	IssueRefreshToken(subject string) (string, error)

	// GenerateTokens issues an access and refresh token pair for subject.
	GenerateTokens(subject string) (*entity.TokenPair, error)

	// ValidateToken checks signature, structure and expiry of either token type.
	ValidateToken(token string) (Claims, error)

	// ValidateTokenType is ValidateToken plus a match on the "type" claim.
	ValidateTokenType(token string, expected entity.TokenType) (Claims, error)
}
