package models

// CommentModel is the persistence model for ticket comments.
type CommentModel struct {
	ID         uint   `gorm:"primarykey"`
	TicketID   uint   `gorm:"not null;index:idx_comments_ticket"`
	AuthorID   uint   `gorm:"not null"`
	Content    string `gorm:"not null;type:text"`
	Attachment string `gorm:"size:255"`
	CreatedAt  int64  `gorm:"not null;index:idx_comments_created_at"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
