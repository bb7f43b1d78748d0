package models

// TicketModel is the persistence model for tickets. Foreign keys are plain
// columns; comment and history cleanup on delete is done by the repository
// inside the same transaction, not by database constraints.
type TicketModel struct {
	ID           uint   `gorm:"primarykey"`
	Title        string `gorm:"not null;size:150"`
	Description  string `gorm:"not null;type:text"`
	CreatorID    uint   `gorm:"not null;index:idx_tickets_creator"`
	OriginSector string `gorm:"not null;size:50;index:idx_tickets_origin_sector"`
	TargetSector string `gorm:"not null;size:50;index:idx_tickets_target_sector"`
	Priority     string `gorm:"not null;size:20"`
	Status       string `gorm:"not null;size:20;index:idx_tickets_status"`
	AssigneeID   *uint  `gorm:"index:idx_tickets_assignee"`
	Attachment   string `gorm:"size:255"`
	CreatedAt    int64  `gorm:"not null;index:idx_tickets_created_at"`
	UpdatedAt    int64  `gorm:"not null"`
	ClosedAt     *int64
}

func (TicketModel) TableName() string {
	return "tickets"
}
