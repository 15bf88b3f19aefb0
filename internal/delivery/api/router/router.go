// Package router wires the API handlers onto echo routes.
package router

import (
	"vendo/internal/delivery/api/middleware"
	"vendo/internal/delivery/api/router/handler"
	"vendo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AdminAuthHandler *handler.AdminAuthHandler
	ProfileHandler   *handler.ProfileHandler
	AdminUserHandler *handler.AdminUserHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

type router struct {
	authHandler      *handler.AuthHandler
	adminAuthHandler *handler.AdminAuthHandler
	profileHandler   *handler.ProfileHandler
	adminUserHandler *handler.AdminUserHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		adminAuthHandler: params.AdminAuthHandler,
		profileHandler:   params.ProfileHandler,
		adminUserHandler: params.AdminUserHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	requireUser := r.authMiddleware.RequireScope(entity.ScopeUser)
	requireAdmin := r.authMiddleware.RequireScope(entity.ScopeAdmin)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, requireUser)
	}

	userGroup := api.Group("/user", requireUser)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/auth/login", r.adminAuthHandler.Login)
		adminGroup.POST("/auth/logout", r.adminAuthHandler.Logout, requireAdmin)

		usersGroup := adminGroup.Group("/users", requireAdmin)
		usersGroup.GET("", r.adminUserHandler.ListUsers)
		usersGroup.GET("/:userId", r.adminUserHandler.GetUser)
		usersGroup.PUT("/:userId", r.adminUserHandler.UpdateUser)
		usersGroup.DELETE("/:userId", r.adminUserHandler.DeleteUser)
	}
}
