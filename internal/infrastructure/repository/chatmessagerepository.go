package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type ChatMessageRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMessageMapper
}

func NewChatMessageRepository(gormDB *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{
		db:     gormDB,
		mapper: mappers.NewChatMessageMapper(),
	}
}

func (r *ChatMessageRepository) Save(ctx context.Context, m *chat.Message) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *ChatMessageRepository) FindThread(ctx context.Context, userA, userB uint) ([]*chat.Message, error) {
	var messageModels []models.ChatMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("sent_at ASC, id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find chat thread: %w", err)
	}

	return r.toDomainList(messageModels)
}

// FindConversations loads the user's messages newest first and keeps the
// first message seen per partner. The grouping happens in Go; a window
// function would tie the query to one sql dialect.
func (r *ChatMessageRepository) FindConversations(ctx context.Context, userID uint) ([]chat.ConversationSummary, error) {
	var messageModels []models.ChatMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at DESC, id DESC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find conversations: %w", err)
	}

	seen := make(map[uint]bool)
	summaries := make([]chat.ConversationSummary, 0)

	for _, model := range messageModels {
		partnerID := model.SenderID
		if partnerID == userID {
			partnerID = model.ReceiverID
		}
		if seen[partnerID] {
			continue
		}
		seen[partnerID] = true

		msg, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, chat.ConversationSummary{
			PartnerID:   partnerID,
			LastMessage: msg,
		})
	}

	return summaries, nil
}

func (r *ChatMessageRepository) UnreadSenderIDs(ctx context.Context, userID uint) ([]uint, error) {
	var senderIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ChatMessageModel{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Distinct().
		Pluck("sender_id", &senderIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to find unread senders: %w", err)
	}

	return senderIDs, nil
}

func (r *ChatMessageRepository) MarkThreadRead(ctx context.Context, userID, senderID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ChatMessageModel{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", userID, senderID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}

	return nil
}

func (r *ChatMessageRepository) toDomainList(messageModels []models.ChatMessageModel) ([]*chat.Message, error) {
	messages := make([]*chat.Message, len(messageModels))
	for i, model := range messageModels {
		m, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = m
	}
	return messages, nil
}
