package mappers

import (
	"helpdesk/internal/domain/chat"
	"helpdesk/internal/infrastructure/persistence/models"
)

// ChatMessageMapper handles the conversion between chat messages and
// persistence models.
type ChatMessageMapper interface {
	ToModel(msg *chat.Message) *models.ChatMessageModel
	ToDomain(model *models.ChatMessageModel) (*chat.Message, error)
}

type ChatMessageMapperImpl struct{}

func NewChatMessageMapper() ChatMessageMapper {
	return &ChatMessageMapperImpl{}
}

func (m *ChatMessageMapperImpl) ToModel(msg *chat.Message) *models.ChatMessageModel {
	return &models.ChatMessageModel{
		ID:         msg.ID(),
		SenderID:   msg.SenderID(),
		ReceiverID: msg.ReceiverID(),
		Content:    msg.Content(),
		Attachment: msg.Attachment(),
		SentAt:     msg.SentAt().UnixMilli(),
		IsRead:     msg.IsRead(),
	}
}

func (m *ChatMessageMapperImpl) ToDomain(model *models.ChatMessageModel) (*chat.Message, error) {
	return chat.ReconstructMessage(
		model.ID,
		model.SenderID,
		model.ReceiverID,
		model.Content,
		model.Attachment,
		millisToTime(model.SentAt),
		model.IsRead,
	)
}
