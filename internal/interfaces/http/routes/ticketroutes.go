package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTicketRoutes configures ticket lifecycle routes. Visibility trimming
// happens in the use cases; the route layer only gates role-bound writes.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		// Specific paths before the parameterized ones.
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		// Status changes stay open here; the use case rejects actors
		// without technician privileges on its own.
		tickets.PATCH("/:id/status", cfg.TicketHandler.ChangeStatus)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission("tickets", "update"),
			cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission("tickets", "delete"),
			cfg.TicketHandler.DeleteTicket)
	}
}
