package validator

import (
	"testing"

	domainerrors "vendo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signup{Email: "ann@example.com", Username: "ann"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&signup{Email: "nope", Username: ""})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "email must be a valid email address; username is required", appErr.Details())
	})

	t.Run("min length", func(t *testing.T) {
		err := v.Validate(&signup{Email: "ann@example.com", Username: "an"})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "username must be at least 3 characters", appErr.Details())
	})
}
