package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UploadHandler stores attachments ahead of the record that references
// them. The client uploads first, then submits the returned stored name in
// the ticket, comment or chat payload.
type UploadHandler struct {
	store  *storage.LocalStore
	logger logger.Interface
}

func NewUploadHandler(store *storage.LocalStore, logger logger.Interface) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

var uploadKinds = map[string]storage.Kind{
	"ticket":  storage.KindTicketAttachment,
	"comment": storage.KindCommentAttachment,
	"chat":    storage.KindChatAttachment,
}

// Upload handles POST /api/uploads?kind=ticket with a multipart "file"
// field.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind, ok := uploadKinds[c.Query("kind")]
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "kind must be one of: ticket, comment, chat")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > storage.MaxUploadSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "file exceeds the 16MB upload limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer f.Close()

	storedName, err := h.store.Store(f, fileHeader.Filename, kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"stored_name": storedName}, "File uploaded")
}

// Download handles GET /api/uploads/:name
func (h *UploadHandler) Download(c *gin.Context) {
	f, err := h.store.Open(c.Param("name"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer f.Close()

	c.FileAttachment(f.Name(), c.Param("name"))
}
