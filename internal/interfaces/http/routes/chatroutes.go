package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type ChatRouteConfig struct {
	ChatHandler    *handlers.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupChatRoutes(api *gin.RouterGroup, cfg *ChatRouteConfig) {
	chat := api.Group("/chat")
	chat.Use(cfg.AuthMiddleware.RequireAuth())
	{
		chat.GET("/conversations", cfg.ChatHandler.ListConversations)
		chat.GET("/unread-senders", cfg.ChatHandler.UnreadSenders)

		chat.GET("/threads/:userID", cfg.ChatHandler.GetThread)
		chat.POST("/threads/:userID/messages", cfg.ChatHandler.SendMessage)
		chat.POST("/threads/:userID/read", cfg.ChatHandler.MarkThreadRead)
	}
}
