package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SendMessageCommand struct {
	SenderID   uint
	ReceiverID uint
	Content    string
	Attachment string
}

type SendMessageResult struct {
	MessageID uint
	SentAt    time.Time
}

// SendMessageUseCase delivers a direct message. Sending never touches read
// state; the recipient acknowledges explicitly.
type SendMessageUseCase struct {
	chatRepo chat.Repository
	userRepo user.Repository
	logger   logger.Interface
}

func NewSendMessageUseCase(chatRepo chat.Repository, userRepo user.Repository, logger logger.Interface) *SendMessageUseCase {
	return &SendMessageUseCase{chatRepo: chatRepo, userRepo: userRepo, logger: logger}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	uc.logger.Infow("executing send message use case", "sender_id", cmd.SenderID, "receiver_id", cmd.ReceiverID)

	recipient, err := uc.userRepo.FindByID(ctx, cmd.ReceiverID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("recipient does not exist")
		}
		return nil, err
	}
	if !recipient.IsActive() {
		return nil, errors.NewValidationError("recipient account is deactivated")
	}

	msg, err := chat.NewMessage(cmd.SenderID, cmd.ReceiverID, cmd.Content, cmd.Attachment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.chatRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to save message", "error", err)
		return nil, err
	}

	uc.logger.Infow("message sent", "message_id", msg.ID(), "receiver_id", cmd.ReceiverID)

	return &SendMessageResult{MessageID: msg.ID(), SentAt: msg.SentAt()}, nil
}
