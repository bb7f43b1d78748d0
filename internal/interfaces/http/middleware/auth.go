package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const (
	ContextKeyUserID     = "user_id"
	ContextKeySessionID  = "session_id"
	ContextKeyUserSector = "user_sector"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and loads the account. The account
// lookup makes deactivation take effect immediately instead of at token
// expiry, and supplies the sector the token does not carry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Validate(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		account, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Warnw("token for unknown user", "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if !account.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is deactivated")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, account.ID())
		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(authorization.ContextKeyUserRole, account.Role().String())
		c.Set(ContextKeyUserSector, account.Sector().String())

		c.Next()
	}
}
