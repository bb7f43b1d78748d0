package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetThreadQuery struct {
	UserID  uint
	OtherID uint
}

type MessageDTO struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Attachment string    `json:"attachment,omitempty"`
	SentAt     time.Time `json:"sent_at"`
	Read       bool      `json:"read"`
	FromMe     bool      `json:"from_me"`
}

type GetThreadResult struct {
	PartnerID   uint
	PartnerName string
	Messages    []MessageDTO
}

// GetThreadUseCase returns the full two-party thread, oldest first. Reading
// a thread does not mark it read; that is a separate acknowledgment.
type GetThreadUseCase struct {
	chatRepo chat.Repository
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetThreadUseCase(chatRepo chat.Repository, userRepo user.Repository, logger logger.Interface) *GetThreadUseCase {
	return &GetThreadUseCase{chatRepo: chatRepo, userRepo: userRepo, logger: logger}
}

func (uc *GetThreadUseCase) Execute(ctx context.Context, query GetThreadQuery) (*GetThreadResult, error) {
	uc.logger.Debugw("executing get thread use case", "user_id", query.UserID, "other_id", query.OtherID)

	partner, err := uc.userRepo.FindByID(ctx, query.OtherID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("conversation partner not found")
		}
		return nil, err
	}

	me, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.chatRepo.FindThread(ctx, query.UserID, query.OtherID)
	if err != nil {
		uc.logger.Errorw("failed to load thread", "user_id", query.UserID, "other_id", query.OtherID, "error", err)
		return nil, err
	}

	result := &GetThreadResult{
		PartnerID:   partner.ID(),
		PartnerName: partner.Name(),
		Messages:    make([]MessageDTO, 0, len(messages)),
	}
	for _, m := range messages {
		senderName := partner.Name()
		if m.SenderID() == query.UserID {
			senderName = me.Name()
		}
		result.Messages = append(result.Messages, MessageDTO{
			ID:         m.ID(),
			SenderID:   m.SenderID(),
			SenderName: senderName,
			Content:    m.Content(),
			Attachment: m.Attachment(),
			SentAt:     m.SentAt(),
			Read:       m.IsRead(),
			FromMe:     m.SenderID() == query.UserID,
		})
	}

	return result, nil
}
