package auth

import (
	"strings"
	"testing"

	"vendo/config"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(policy *config.PasswordStrengthConfig) *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost, policy)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedDigestsBothVerify(t *testing.T) {
	hasher := newTestHasher(nil)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_MalformedDigestNeverMatches(t *testing.T) {
	hasher := newTestHasher(nil)

	valid, err := hasher.Hash("secret1")
	require.NoError(t, err)

	digests := []string{
		"",
		"invalid_hash",
		"$2a$",
		valid[:len(valid)-5],
		strings.Replace(valid, "$2a$", "$9z$", 1),
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}

	for _, digest := range digests {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("secret1", digest), "digest %q", digest)
		})
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6, nil)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99, nil)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 10},
	}

	hasher := NewBcryptHasher(HasherParams{Config: cfg})

	err := hasher.ValidatePasswordStrength("short")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	strict := &config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}

	testCases := []struct {
		name        string
		policy      *config.PasswordStrengthConfig
		password    string
		expectedErr string
	}{
		{name: "lenient accepts short digits", policy: &config.PasswordStrengthConfig{MinLength: 6}, password: "secret1"},
		{name: "lenient rejects too short", policy: &config.PasswordStrengthConfig{MinLength: 6}, password: "abc", expectedErr: "must be at least 6 characters long"},
		{name: "strict accepts", policy: strict, password: "StrongPass123!"},
		{name: "strict too short", policy: strict, password: "Ab1!", expectedErr: "must be at least 8 characters long"},
		{name: "strict no lowercase", policy: strict, password: "PASSWORD123!", expectedErr: "must contain at least one lowercase letter"},
		{name: "strict no uppercase", policy: strict, password: "password123!", expectedErr: "must contain at least one uppercase letter"},
		{name: "strict no number", policy: strict, password: "PasswordABC!", expectedErr: "must contain at least one number"},
		{name: "strict no special", policy: strict, password: "Password123", expectedErr: "must contain at least one special character"},
		{name: "strict unicode", policy: strict, password: "Pässphräse123!"},
		{name: "bcrypt input limit", policy: nil, password: strings.Repeat("a", 73), expectedErr: "must be at most 72 bytes long"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := newTestHasher(tc.policy).ValidatePasswordStrength(tc.password)
			if tc.expectedErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
}
