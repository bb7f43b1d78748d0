package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type BackupRouteConfig struct {
	BackupHandler        *handlers.BackupHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupBackupRoutes(api *gin.RouterGroup, cfg *BackupRouteConfig) {
	backups := api.Group("/backups")
	backups.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission("backups", "manage"),
	)
	{
		backups.POST("", cfg.BackupHandler.CreateBackup)
		backups.GET("", cfg.BackupHandler.ListBackups)
		backups.GET("/:name", cfg.BackupHandler.DownloadBackup)
		backups.DELETE("/:name", cfg.BackupHandler.DeleteBackup)
	}
}
