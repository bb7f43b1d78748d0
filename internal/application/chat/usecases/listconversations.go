package usecases

import (
	"context"
	"sort"
	"time"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListConversationsQuery struct {
	UserID uint
}

type ConversationDTO struct {
	PartnerID      uint      `json:"partner_id"`
	PartnerName    string    `json:"partner_name"`
	LastContent    string    `json:"last_content"`
	LastAttachment string    `json:"last_attachment,omitempty"`
	LastSentAt     time.Time `json:"last_sent_at"`
	LastFromMe     bool      `json:"last_from_me"`
	Unread         bool      `json:"unread"`
}

type ContactDTO struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

type ListConversationsResult struct {
	// Conversations, most recently active first.
	Conversations []ConversationDTO
	// NewContacts are users the caller never exchanged a message with,
	// sorted by name, for starting a fresh conversation.
	NewContacts []ContactDTO
}

type ListConversationsUseCase struct {
	chatRepo chat.Repository
	userRepo user.Repository
	logger   logger.Interface
}

func NewListConversationsUseCase(chatRepo chat.Repository, userRepo user.Repository, logger logger.Interface) *ListConversationsUseCase {
	return &ListConversationsUseCase{chatRepo: chatRepo, userRepo: userRepo, logger: logger}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, query ListConversationsQuery) (*ListConversationsResult, error) {
	uc.logger.Debugw("executing list conversations use case", "user_id", query.UserID)

	summaries, err := uc.chatRepo.FindConversations(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load conversations", "user_id", query.UserID, "error", err)
		return nil, err
	}

	unreadSenders, err := uc.chatRepo.UnreadSenderIDs(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	unread := make(map[uint]bool, len(unreadSenders))
	for _, id := range unreadSenders {
		unread[id] = true
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}

	result := &ListConversationsResult{
		Conversations: make([]ConversationDTO, 0, len(summaries)),
		NewContacts:   []ContactDTO{},
	}

	partners := make(map[uint]bool, len(summaries))
	for _, s := range summaries {
		partners[s.PartnerID] = true
		last := s.LastMessage
		result.Conversations = append(result.Conversations, ConversationDTO{
			PartnerID:      s.PartnerID,
			PartnerName:    names[s.PartnerID],
			LastContent:    last.Content(),
			LastAttachment: last.Attachment(),
			LastSentAt:     last.SentAt(),
			LastFromMe:     last.SenderID() == query.UserID,
			Unread:         unread[s.PartnerID],
		})
	}
	sort.SliceStable(result.Conversations, func(i, j int) bool {
		return result.Conversations[i].LastSentAt.After(result.Conversations[j].LastSentAt)
	})

	for _, u := range users {
		if u.ID() == query.UserID || partners[u.ID()] || !u.IsActive() {
			continue
		}
		result.NewContacts = append(result.NewContacts, ContactDTO{UserID: u.ID(), Name: u.Name()})
	}
	sort.Slice(result.NewContacts, func(i, j int) bool {
		return result.NewContacts[i].Name < result.NewContacts[j].Name
	})

	return result, nil
}
