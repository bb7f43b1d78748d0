package usecases

import (
	"context"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/shared/logger"
)

type UnreadSendersQuery struct {
	UserID uint
}

type UnreadSendersResult struct {
	SenderIDs []uint
}

// UnreadSendersUseCase lists who has unread messages waiting for the user,
// the badge source for the chat sidebar and the polling endpoint.
type UnreadSendersUseCase struct {
	chatRepo chat.Repository
	logger   logger.Interface
}

func NewUnreadSendersUseCase(chatRepo chat.Repository, logger logger.Interface) *UnreadSendersUseCase {
	return &UnreadSendersUseCase{chatRepo: chatRepo, logger: logger}
}

func (uc *UnreadSendersUseCase) Execute(ctx context.Context, query UnreadSendersQuery) (*UnreadSendersResult, error) {
	ids, err := uc.chatRepo.UnreadSenderIDs(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load unread senders", "user_id", query.UserID, "error", err)
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return &UnreadSendersResult{SenderIDs: ids}, nil
}
