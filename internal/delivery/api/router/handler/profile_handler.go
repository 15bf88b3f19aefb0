package handler

import (
	"net/http"

	"vendo/internal/delivery/api/middleware"
	"vendo/internal/delivery/api/response"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/errors"
	"vendo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// GetProfile returns the profile named by the token subject.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req UserPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), subject, req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
