package chat

import (
	"fmt"
	"time"
)

// Message is a direct message between two users. Either content or an
// attachment must be present; the read flag is flipped only by the
// recipient's acknowledgment.
type Message struct {
	id         uint
	senderID   uint
	receiverID uint
	content    string
	attachment string
	sentAt     time.Time
	read       bool
}

const MaxContentLength = 500

func NewMessage(senderID, receiverID uint, content, attachment string) (*Message, error) {
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if receiverID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}
	if content == "" && attachment == "" {
		return nil, fmt.Errorf("message needs content or an attachment")
	}
	if len(content) > MaxContentLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxContentLength)
	}

	return &Message{
		senderID:   senderID,
		receiverID: receiverID,
		content:    content,
		attachment: attachment,
		sentAt:     time.Now(),
	}, nil
}

func ReconstructMessage(id, senderID, receiverID uint, content, attachment string, sentAt time.Time, read bool) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:         id,
		senderID:   senderID,
		receiverID: receiverID,
		content:    content,
		attachment: attachment,
		sentAt:     sentAt,
		read:       read,
	}, nil
}

func (m *Message) ID() uint           { return m.id }
func (m *Message) SenderID() uint     { return m.senderID }
func (m *Message) ReceiverID() uint   { return m.receiverID }
func (m *Message) Content() string    { return m.content }
func (m *Message) Attachment() string { return m.attachment }
func (m *Message) SentAt() time.Time  { return m.sentAt }
func (m *Message) IsRead() bool       { return m.read }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// MarkRead is called on behalf of the recipient.
func (m *Message) MarkRead() {
	m.read = true
}
