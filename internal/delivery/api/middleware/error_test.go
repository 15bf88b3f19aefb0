package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "wrapped domain error keeps its status",
			err:        errors.Wrap(domainerrors.ErrUserNotFound, "failed to get profile"),
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:        "client error details are exposed",
			err:         domainerrors.ErrPasswordStrength.WithDetails("must be at least 6 characters long"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PASSWORD_STRENGTH",
			wantDetails: "must be at least 6 characters long",
		},
		{
			name:       "invalid token hides the reason",
			err:        domainerrors.ErrInvalidToken.WrapMessage("token is expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is a generic 500",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
			assert.NotContains(t, rec.Body.String(), "relation does not exist")
		})
	}
}
