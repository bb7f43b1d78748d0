package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler       *handlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes configures system settings routes. Reading is open to
// every authenticated user so clients can render the logo.
func SetupSettingRoutes(api *gin.RouterGroup, cfg *SettingRouteConfig) {
	settings := api.Group("/settings")
	settings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		settings.GET("", cfg.SettingHandler.GetSettings)

		manage := cfg.PermissionMiddleware.RequirePermission("settings", "manage")

		settings.PUT("", manage, cfg.SettingHandler.UpdateSettings)
		settings.POST("/logo", manage, cfg.SettingHandler.UploadLogo)
	}
}
