package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Technicians need the assignee picker, so this stays outside the
		// management gate. Must come before /:id routes.
		users.GET("/assignable", authorization.RequireTechnician(), cfg.UserHandler.ListAssignable)

		manage := cfg.PermissionMiddleware.RequirePermission("users", "manage")

		users.POST("", manage, cfg.UserHandler.Register)
		users.GET("", manage, cfg.UserHandler.ListUsers)
		users.POST("/:id/reset-password", manage, cfg.UserHandler.ResetPassword)
		users.POST("/:id/toggle-active", manage, cfg.UserHandler.ToggleActive)
		users.DELETE("/:id", manage, cfg.UserHandler.DeleteUser)
	}
}
