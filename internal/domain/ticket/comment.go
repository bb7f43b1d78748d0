package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Comment belongs to exactly one ticket. Comments never produce history
// entries; history tracks only status, priority and assignment.
type Comment struct {
	id         uint
	ticketID   uint
	authorID   uint
	content    string
	attachment string
	createdAt  time.Time
}

func NewComment(ticketID, authorID uint, content string, attachment string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(strings.TrimSpace(content)) < 5 {
		return nil, fmt.Errorf("comment must be at least 5 characters")
	}

	return &Comment{
		ticketID:   ticketID,
		authorID:   authorID,
		content:    content,
		attachment: attachment,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID, authorID uint, content, attachment string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		content:    content,
		attachment: attachment,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) Attachment() string   { return c.attachment }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
