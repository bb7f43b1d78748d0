package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt int64            `json:"expires_at"`
	User      usecases.UserDTO `json:"user"`
}

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	tokenService usecases.TokenService
	logger       logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, tokenService usecases.TokenService, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
		User:      result.User,
	})
}

// Refresh handles POST /api/auth/refresh. A valid token buys a fresh one
// carrying the same session, so the polling watermark survives.
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID := currentUserID(c)
	sessionID := c.GetString(middleware.ContextKeySessionID)
	role := currentRole(c)

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, sessionID, role.String())
	if err != nil {
		h.logger.Errorw("failed to refresh token", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy and the session watermark simply expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
