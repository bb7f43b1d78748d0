package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/setting/usecases"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UpdateSettingsRequest struct {
	AutoCloseDays *int `json:"auto_close_days" binding:"omitempty,min=1"`
}

type SettingHandler struct {
	getSettingsUC    usecases.GetSettingsExecutor
	updateSettingsUC usecases.UpdateSettingsExecutor
	store            *storage.LocalStore
	logger           logger.Interface
}

func NewSettingHandler(
	getSettingsUC usecases.GetSettingsExecutor,
	updateSettingsUC usecases.UpdateSettingsExecutor,
	store *storage.LocalStore,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		store:            store,
		logger:           logger,
	}
}

// GetSettings handles GET /api/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSettings handles PUT /api/settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		ActorRole:     currentRole(c),
		AutoCloseDays: req.AutoCloseDays,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated", result)
}

// UploadLogo handles POST /api/settings/logo with a multipart "file" field.
func (h *SettingHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "logo file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer f.Close()

	storedName, err := h.store.Store(f, fileHeader.Filename, storage.KindLogo)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	previous, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		ActorRole: currentRole(c),
		LogoPath:  &storedName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The replaced logo has no remaining references.
	if previous.LogoPath != "" && previous.LogoPath != storedName {
		if err := h.store.Remove(previous.LogoPath); err != nil {
			h.logger.Warnw("failed to remove previous logo", "stored_name", previous.LogoPath, "error", err)
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Logo updated", result)
}
