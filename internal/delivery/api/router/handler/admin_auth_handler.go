package handler

import (
	"log/slog"
	"net/http"

	"vendo/internal/delivery/api/middleware"
	"vendo/internal/delivery/api/response"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/errors"
	"vendo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminAuthHandlerParams holds dependencies for AdminAuthHandler, injected by Fx.
type AdminAuthHandlerParams struct {
	fx.In

	AdminAuthUC usecase.AdminAuthUsecase
	Logger      *slog.Logger
}

// AdminAuthHandler serves back-office login and logout.
type AdminAuthHandler struct {
	adminAuthUC usecase.AdminAuthUsecase
	logger      *slog.Logger
}

// NewAdminAuthHandler is the constructor for AdminAuthHandler.
func NewAdminAuthHandler(params AdminAuthHandlerParams) *AdminAuthHandler {
	return &AdminAuthHandler{
		adminAuthUC: params.AdminAuthUC,
		logger:      params.Logger,
	}
}

// Login handles the admin login request.
func (h *AdminAuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.adminAuthUC.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(tokens))
}

// Logout handles the admin logout request.
func (h *AdminAuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	if err := h.adminAuthUC.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}
