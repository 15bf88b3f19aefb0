package errors

import (
	"net/http"
	"testing"

	"vendo/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrPasswordStrength.WithDetails("minimum length is 6")

	assert.True(t, errors.Is(detailed, ErrPasswordStrength))
	assert.False(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "minimum length is 6", detailed.Details())
	assert.Empty(t, ErrPasswordStrength.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrInvalidToken.WrapMessage("token expired")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "token expired")
}

func TestTaxonomy_AuthErrorsAreDistinct(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidToken.HTTPCode())
	assert.Equal(t, http.StatusForbidden, ErrForbidden.HTTPCode())
	assert.NotEqual(t, ErrInvalidToken.ErrorCode(), ErrForbidden.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "find admin")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "find admin", err.Details())
}
