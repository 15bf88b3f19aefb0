package handler

import (
	"net/http"
	"strconv"

	"vendo/internal/delivery/api/response"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/errors"
	"vendo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminUserHandlerParams holds dependencies for AdminUserHandler, injected by Fx.
type AdminUserHandlerParams struct {
	fx.In

	AdminUserUC usecase.AdminUserUsecase
}

// AdminUserHandler serves user management for admins.
type AdminUserHandler struct {
	adminUserUC usecase.AdminUserUsecase
}

// NewAdminUserHandler is the constructor for AdminUserHandler.
func NewAdminUserHandler(params AdminUserHandlerParams) *AdminUserHandler {
	return &AdminUserHandler{adminUserUC: params.AdminUserUC}
}

// ListUsersRequest holds the paging query parameters.
type ListUsersRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1,max=1000000"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// ListUsersResponse is one page of users.
type ListUsersResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListUsers handles GET /api/admin/users.
func (h *AdminUserHandler) ListUsers(c echo.Context) error {
	var req ListUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paging parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.adminUserUC.ListUsers(c.Request().Context(), usecase.ListUsersInput{Page: req.Page, PageSize: req.PageSize})
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]UserResponse, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, toUserResponse(u))
	}

	return response.Success(c, http.StatusOK, ListUsersResponse{
		Users:    users,
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
	})
}

// GetUser handles GET /api/admin/users/:userId.
func (h *AdminUserHandler) GetUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.adminUserUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles PUT /api/admin/users/:userId.
func (h *AdminUserHandler) UpdateUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var req UserPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.adminUserUC.UpdateUser(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/admin/users/:userId.
func (h *AdminUserHandler) DeleteUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	if err := h.adminUserUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func userIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("userId must be a positive integer")
	}

	return id, nil
}
