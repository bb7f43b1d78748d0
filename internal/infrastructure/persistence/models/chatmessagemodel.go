package models

// ChatMessageModel is the persistence model for direct messages.
// The read flag column is named is_read because READ is reserved in MySQL.
type ChatMessageModel struct {
	ID         uint   `gorm:"primarykey"`
	SenderID   uint   `gorm:"not null;index:idx_chat_messages_sender"`
	ReceiverID uint   `gorm:"not null;index:idx_chat_messages_receiver"`
	Content    string `gorm:"size:500"`
	Attachment string `gorm:"size:255"`
	SentAt     int64  `gorm:"not null;index:idx_chat_messages_sent_at"`
	IsRead     bool   `gorm:"column:is_read;not null;default:false"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
