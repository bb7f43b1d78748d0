package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Sector   string `json:"sector" binding:"required,sector"`
	Role     string `json:"role" binding:"required,oneof=collaborator technician administrator"`
	Password string `json:"password" binding:"required,min=6"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UserHandler struct {
	registerUC       usecases.RegisterUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	resetPasswordUC  usecases.ResetPasswordExecutor
	toggleActiveUC   usecases.ToggleActiveExecutor
	deleteUserUC     usecases.DeleteUserExecutor
	listAssignableUC usecases.ListAssignableExecutor
	logger           logger.Interface
}

func NewUserHandler(
	registerUC usecases.RegisterUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
	toggleActiveUC usecases.ToggleActiveExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	listAssignableUC usecases.ListAssignableExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		registerUC:       registerUC,
		listUsersUC:      listUsersUC,
		resetPasswordUC:  resetPasswordUC,
		toggleActiveUC:   toggleActiveUC,
		deleteUserUC:     deleteUserUC,
		listAssignableUC: listAssignableUC,
		logger:           logger,
	}
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		ActorRole: currentRole(c),
		Name:      req.Name,
		Email:     req.Email,
		Sector:    req.Sector,
		Role:      req.Role,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ResetPassword handles POST /api/users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		ActorRole:   currentRole(c),
		UserID:      userID,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset", nil)
}

// ToggleActive handles POST /api/users/:id/toggle-active
func (h *UserHandler) ToggleActive(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleActiveUC.Execute(c.Request.Context(), usecases.ToggleActiveCommand{
		ActorID:   currentUserID(c),
		ActorRole: currentRole(c),
		UserID:    userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		ActorID:   currentUserID(c),
		ActorRole: currentRole(c),
		UserID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListAssignable handles GET /api/users/assignable?sector=IT. Open to
// technicians, who need it for the assignee picker.
func (h *UserHandler) ListAssignable(c *gin.Context) {
	result, err := h.listAssignableUC.Execute(c.Request.Context(), usecases.ListAssignableQuery{
		Sector: c.Query("sector"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
