package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
)

func (c *Container) setupRouter() *gin.Engine {
	gin.SetMode(ginMode(c.cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.CORSOrigins))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.notificationHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupChatRoutes(api, &routes.ChatRouteConfig{
		ChatHandler:    c.chatHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupReportRoutes(api, &routes.ReportRouteConfig{
		ReportHandler:        c.reportHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          c.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler:       c.settingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupBackupRoutes(api, &routes.BackupRouteConfig{
		BackupHandler:        c.backupHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupUploadRoutes(api, &routes.UploadRouteConfig{
		UploadHandler:  c.uploadHandler,
		AuthMiddleware: c.authMiddleware,
	})

	return engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
