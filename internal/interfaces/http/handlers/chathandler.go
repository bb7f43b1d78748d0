package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/chat/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SendMessageRequest struct {
	Content    string `json:"content" binding:"max=500"`
	Attachment string `json:"attachment"`
}

type ChatHandler struct {
	sendMessageUC       usecases.SendMessageExecutor
	listConversationsUC usecases.ListConversationsExecutor
	getThreadUC         usecases.GetThreadExecutor
	markThreadReadUC    usecases.MarkThreadReadExecutor
	unreadSendersUC     usecases.UnreadSendersExecutor
	logger              logger.Interface
}

func NewChatHandler(
	sendMessageUC usecases.SendMessageExecutor,
	listConversationsUC usecases.ListConversationsExecutor,
	getThreadUC usecases.GetThreadExecutor,
	markThreadReadUC usecases.MarkThreadReadExecutor,
	unreadSendersUC usecases.UnreadSendersExecutor,
	logger logger.Interface,
) *ChatHandler {
	return &ChatHandler{
		sendMessageUC:       sendMessageUC,
		listConversationsUC: listConversationsUC,
		getThreadUC:         getThreadUC,
		markThreadReadUC:    markThreadReadUC,
		unreadSendersUC:     unreadSendersUC,
		logger:              logger,
	}
}

// ListConversations handles GET /api/chat/conversations
func (h *ChatHandler) ListConversations(c *gin.Context) {
	result, err := h.listConversationsUC.Execute(c.Request.Context(), usecases.ListConversationsQuery{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"conversations": result.Conversations,
		"new_contacts":  result.NewContacts,
	})
}

// GetThread handles GET /api/chat/threads/:userID
func (h *ChatHandler) GetThread(c *gin.Context) {
	partnerID, err := utils.ParseUintParam(c, "userID", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getThreadUC.Execute(c.Request.Context(), usecases.GetThreadQuery{
		UserID:  currentUserID(c),
		OtherID: partnerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SendMessage handles POST /api/chat/threads/:userID/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	partnerID, err := utils.ParseUintParam(c, "userID", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		SenderID:   currentUserID(c),
		ReceiverID: partnerID,
		Content:    req.Content,
		Attachment: req.Attachment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}

// MarkThreadRead handles POST /api/chat/threads/:userID/read
func (h *ChatHandler) MarkThreadRead(c *gin.Context) {
	partnerID, err := utils.ParseUintParam(c, "userID", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markThreadReadUC.Execute(c.Request.Context(), usecases.MarkThreadReadCommand{
		UserID:   currentUserID(c),
		SenderID: partnerID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// UnreadSenders handles GET /api/chat/unread-senders
func (h *ChatHandler) UnreadSenders(c *gin.Context) {
	result, err := h.unreadSendersUC.Execute(c.Request.Context(), usecases.UnreadSendersQuery{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"sender_ids": result.SenderIDs})
}
