// Package auth provides the token service, password hasher and authorization gate.
package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"vendo/config"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/service"
	"vendo/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt implementation of service.PasswordHasher.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// HasherParams holds dependencies for the password hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and passwordStrength.
func NewBcryptHasher(params HasherParams) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if params.Config.Auth != nil && params.Config.Auth.BcryptCost != 0 {
		cost = params.Config.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, params.Config.PasswordStrength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost. A nil policy
// only enforces the bcrypt input limit.
func NewBcryptHasherWithCost(cost int, policy *config.PasswordStrengthConfig) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	h := &bcryptHasher{cost: cost}
	if policy != nil {
		h.policy = *policy
	}

	return h
}

// Hash generates a salted bcrypt digest. Two calls never return the same digest.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(digest), nil
}

// Check compares password with a bcrypt digest. Any error, including a
// malformed or truncated digest, is a mismatch.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := h.policy.MinLength
	if length := utf8.RuneCountInString(password); length < minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at least %d characters long", minLength))
	}

	maxLength := h.policy.MaxLength
	if maxLength <= 0 || maxLength > maxBcryptInput {
		maxLength = maxBcryptInput
	}
	if len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at most %d bytes long", maxLength))
	}

	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}

	return nil
}

// bcrypt rejects inputs longer than this.
const maxBcryptInput = 72

func (h *bcryptHasher) hasUppercase(s string) bool {
	return containsRune(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return containsRune(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return containsRune(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return containsRune(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}
