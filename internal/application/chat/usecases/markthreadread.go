package usecases

import (
	"context"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/shared/logger"
)

type MarkThreadReadCommand struct {
	UserID   uint
	SenderID uint
}

// MarkThreadReadUseCase acknowledges every unread message from the sender.
// Safe to repeat.
type MarkThreadReadUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewMarkThreadReadUseCase(chatRepo chat.Repository, logger logger.Interface) *MarkThreadReadUseCase {
	return &MarkThreadReadUseCase{chatRepo: chatRepo, logger: logger}
}

func (uc *MarkThreadReadUseCase) Execute(ctx context.Context, cmd MarkThreadReadCommand) error {
	uc.logger.Debugw("executing mark thread read use case", "user_id", cmd.UserID, "sender_id", cmd.SenderID)

	if err := uc.chatRepo.MarkThreadRead(ctx, cmd.UserID, cmd.SenderID); err != nil {
		uc.logger.Errorw("failed to mark thread read", "user_id", cmd.UserID, "sender_id", cmd.SenderID, "error", err)
		return err
	}
	return nil
}
