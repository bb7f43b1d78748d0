package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/backup/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type BackupHandler struct {
	createBackupUC usecases.CreateBackupExecutor
	listBackupsUC  usecases.ListBackupsExecutor
	deleteBackupUC usecases.DeleteBackupExecutor
	snapshots      usecases.SnapshotService
	logger         logger.Interface
}

func NewBackupHandler(
	createBackupUC usecases.CreateBackupExecutor,
	listBackupsUC usecases.ListBackupsExecutor,
	deleteBackupUC usecases.DeleteBackupExecutor,
	snapshots usecases.SnapshotService,
	logger logger.Interface,
) *BackupHandler {
	return &BackupHandler{
		createBackupUC: createBackupUC,
		listBackupsUC:  listBackupsUC,
		deleteBackupUC: deleteBackupUC,
		snapshots:      snapshots,
		logger:         logger,
	}
}

// CreateBackup handles POST /api/backups
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	result, err := h.createBackupUC.Execute(c.Request.Context(), usecases.BackupCommand{
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Backup created")
}

// ListBackups handles GET /api/backups
func (h *BackupHandler) ListBackups(c *gin.Context) {
	result, err := h.listBackupsUC.Execute(c.Request.Context(), usecases.BackupCommand{
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DownloadBackup handles GET /api/backups/:name. The route is admin gated;
// the snapshot service rejects names outside the artifact scheme.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	name := c.Param("name")

	path, err := h.snapshots.Path(name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(path, name)
}

// DeleteBackup handles DELETE /api/backups/:name
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	if err := h.deleteBackupUC.Execute(c.Request.Context(), usecases.DeleteBackupCommand{
		ActorRole: currentRole(c),
		Name:      c.Param("name"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
