package chat

import (
	"context"
)

// ConversationSummary pairs a partner with the most recent message
// exchanged with them, in either direction.
type ConversationSummary struct {
	PartnerID   uint
	LastMessage *Message
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
	// FindThread returns every message between the two users, both
	// directions, ascending by send time. No pagination window.
	FindThread(ctx context.Context, userA, userB uint) ([]*Message, error)
	// FindConversations returns one summary per conversation partner of
	// the user, sorted by the summary message's timestamp descending.
	FindConversations(ctx context.Context, userID uint) ([]ConversationSummary, error)
	// UnreadSenderIDs returns the distinct senders with unread messages
	// addressed to the user.
	UnreadSenderIDs(ctx context.Context, userID uint) ([]uint, error)
	// MarkThreadRead flags every unread message from senderID to userID
	// as read. Idempotent.
	MarkThreadRead(ctx context.Context, userID, senderID uint) error
}
