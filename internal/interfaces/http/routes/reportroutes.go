package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type ReportRouteConfig struct {
	ReportHandler        *handlers.ReportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupReportRoutes configures the reporting routes. The dashboard serves
// the same aggregates under its own path.
func SetupReportRoutes(api *gin.RouterGroup, cfg *ReportRouteConfig) {
	viewReports := cfg.PermissionMiddleware.RequirePermission("reports", "view")

	api.GET("/reports", cfg.AuthMiddleware.RequireAuth(), viewReports, cfg.ReportHandler.GetReports)
	api.GET("/dashboard", cfg.AuthMiddleware.RequireAuth(), viewReports, cfg.ReportHandler.GetReports)
}
