package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification/usecases"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type NotificationHandler struct {
	pollUC usecases.PollUpdatesExecutor
	logger logger.Interface
}

func NewNotificationHandler(pollUC usecases.PollUpdatesExecutor, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{pollUC: pollUC, logger: logger}
}

// Poll handles GET /api/notifications/poll. The first poll of a session
// returns nothing and only sets the baseline.
func (h *NotificationHandler) Poll(c *gin.Context) {
	result, err := h.pollUC.Execute(c.Request.Context(), usecases.PollUpdatesCommand{
		SessionID: c.GetString(middleware.ContextKeySessionID),
		UserID:    currentUserID(c),
		Role:      currentRole(c),
		Sector:    vo.Sector(c.GetString(middleware.ContextKeyUserSector)),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Updates)
}
