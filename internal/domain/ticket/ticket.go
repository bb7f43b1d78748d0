package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Ticket is the aggregate root of the helpdesk. It owns its comments and
// history entries; deleting a ticket removes both in the same transaction.
type Ticket struct {
	id           uint
	title        string
	description  string
	creatorID    uint
	originSector vo.Sector
	targetSector vo.Sector
	priority     vo.Priority
	status       vo.TicketStatus
	assigneeID   *uint
	attachment   string
	createdAt    time.Time
	updatedAt    time.Time
	closedAt     *time.Time
	comments     []*Comment
}

func NewTicket(
	title string,
	description string,
	creatorID uint,
	originSector vo.Sector,
	targetSector vo.Sector,
	priority vo.Priority,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if len(title) < 5 || len(title) > 150 {
		return nil, fmt.Errorf("title must be between 5 and 150 characters")
	}
	if len(strings.TrimSpace(description)) < 10 {
		return nil, fmt.Errorf("description must be at least 10 characters")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if !originSector.IsValid() {
		return nil, fmt.Errorf("invalid origin sector: %s", originSector)
	}
	if !targetSector.IsValid() {
		return nil, fmt.Errorf("invalid target sector: %s", targetSector)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		title:        title,
		description:  description,
		creatorID:    creatorID,
		originSector: originSector,
		targetSector: targetSector,
		priority:     priority,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
		comments:     []*Comment{},
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	creatorID uint,
	originSector vo.Sector,
	targetSector vo.Sector,
	priority vo.Priority,
	status vo.TicketStatus,
	assigneeID *uint,
	attachment string,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:           id,
		title:        title,
		description:  description,
		creatorID:    creatorID,
		originSector: originSector,
		targetSector: targetSector,
		priority:     priority,
		status:       status,
		assigneeID:   assigneeID,
		attachment:   attachment,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		closedAt:     closedAt,
		comments:     []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) CreatorID() uint         { return t.creatorID }
func (t *Ticket) OriginSector() vo.Sector { return t.originSector }
func (t *Ticket) TargetSector() vo.Sector { return t.targetSector }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) Attachment() string      { return t.attachment }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time    { return t.closedAt }

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

// SetID sets the ticket ID (only for persistence layer use).
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetAttachment(storedName string) {
	t.attachment = storedName
	t.updatedAt = time.Now()
}

// ChangeStatus moves the ticket to newStatus. Any status is reachable from
// any other; role checks happen in the application layer. The closed
// timestamp is kept in lockstep with the status: set when entering Closed,
// cleared when leaving it.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (bool, vo.TicketStatus, error) {
	if !newStatus.IsValid() {
		return false, "", fmt.Errorf("invalid status: %s", newStatus)
	}

	old := t.status
	if old == newStatus {
		return false, old, nil
	}

	now := time.Now()
	t.status = newStatus
	t.updatedAt = now

	if newStatus.IsClosed() {
		t.closedAt = &now
	} else if old.IsClosed() {
		t.closedAt = nil
	}

	return true, old, nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) (bool, vo.Priority, error) {
	if !newPriority.IsValid() {
		return false, "", fmt.Errorf("invalid priority: %s", newPriority)
	}

	old := t.priority
	if old == newPriority {
		return false, old, nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()
	return true, old, nil
}

// AssignTo sets or clears the assignee. A nil assigneeID unassigns.
func (t *Ticket) AssignTo(assigneeID *uint) (bool, *uint) {
	old := t.assigneeID

	if equalUintPtr(old, assigneeID) {
		return false, old
	}

	t.assigneeID = assigneeID
	t.updatedAt = time.Now()
	return true, old
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	return nil
}

func equalUintPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
