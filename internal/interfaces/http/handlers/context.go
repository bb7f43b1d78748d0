package handlers

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// currentActor builds the request-scoped actor from the values the auth
// middleware stored. Handlers behind RequireAuth can rely on them.
func currentActor(c *gin.Context) ticket.Actor {
	return ticket.Actor{
		ID:     c.GetUint(middleware.ContextKeyUserID),
		Role:   authorization.ParseUserRole(c.GetString(authorization.ContextKeyUserRole)),
		Sector: vo.Sector(c.GetString(middleware.ContextKeyUserSector)),
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextKeyUserID)
}

func currentRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(authorization.ContextKeyUserRole))
}
