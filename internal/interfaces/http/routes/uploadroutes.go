package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type UploadRouteConfig struct {
	UploadHandler  *handlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUploadRoutes(api *gin.RouterGroup, cfg *UploadRouteConfig) {
	uploads := api.Group("/uploads")
	uploads.Use(cfg.AuthMiddleware.RequireAuth())
	{
		uploads.POST("", cfg.UploadHandler.Upload)
		uploads.GET("/:name", cfg.UploadHandler.Download)
	}
}
