package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/report/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// ReportHandler serves both the reports page and the dashboard; they share
// the same aggregates.
type ReportHandler struct {
	getReportsUC usecases.GetReportsExecutor
	logger       logger.Interface
}

func NewReportHandler(getReportsUC usecases.GetReportsExecutor, logger logger.Interface) *ReportHandler {
	return &ReportHandler{getReportsUC: getReportsUC, logger: logger}
}

// GetReports handles GET /api/reports and GET /api/dashboard
func (h *ReportHandler) GetReports(c *gin.Context) {
	result, err := h.getReportsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
