package models

// TicketHistoryModel is the persistence model for the append-only ticket
// audit trail. Old and new values are display strings captured when the
// change happened.
type TicketHistoryModel struct {
	ID       uint `gorm:"primarykey"`
	TicketID uint `gorm:"not null;index:idx_ticket_history_ticket"`
	ActorID  *uint
	Field    string `gorm:"not null;size:20"`
	OldValue string `gorm:"size:255"`
	NewValue string `gorm:"size:255"`
	LoggedAt int64  `gorm:"not null"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_history"
}
