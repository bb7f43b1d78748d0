package dto

import "time"

// TicketSummaryDTO is the list/kanban row.
type TicketSummaryDTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	OriginSector string     `json:"origin_sector"`
	TargetSector string     `json:"target_sector"`
	CreatorName  string     `json:"creator_name"`
	AssigneeName string     `json:"assignee_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
}

// TicketDTO is the full detail view, with rendered markdown bodies.
type TicketDTO struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DescriptionHTML string       `json:"description_html"`
	Status          string       `json:"status"`
	Priority        string       `json:"priority"`
	OriginSector    string       `json:"origin_sector"`
	TargetSector    string       `json:"target_sector"`
	CreatorID       uint         `json:"creator_id"`
	CreatorName     string       `json:"creator_name"`
	AssigneeID      *uint        `json:"assignee_id,omitempty"`
	AssigneeName    string       `json:"assignee_name"`
	Attachment      string       `json:"attachment,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	ClosedAt        *time.Time   `json:"closed_at,omitempty"`
	Comments        []CommentDTO `json:"comments"`
	History         []HistoryDTO `json:"history"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	AuthorID    uint      `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	Attachment  string    `json:"attachment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryDTO struct {
	ID        uint      `json:"id"`
	ActorName string    `json:"actor_name"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	LoggedAt  time.Time `json:"logged_at"`
}
