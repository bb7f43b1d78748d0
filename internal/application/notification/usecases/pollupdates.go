package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

const (
	UpdateNewTicket  = "new_ticket"
	UpdateNewComment = "new_comment"
)

type PollUpdatesCommand struct {
	SessionID string
	UserID    uint
	Role      authorization.UserRole
	Sector    vo.Sector
}

type Update struct {
	Type     string `json:"type"`
	TicketID uint   `json:"ticket_id"`
	Message  string `json:"message"`
	Link     string `json:"link"`
}

type PollUpdatesResult struct {
	Updates []Update
}

type PollUpdatesExecutor interface {
	Execute(ctx context.Context, cmd PollUpdatesCommand) (*PollUpdatesResult, error)
}

// PollUpdatesUseCase computes what changed since the session's last poll.
// The first poll of a session only establishes the baseline; afterwards
// each poll surfaces ticket creations and comments in the window between
// the stored watermark and now, at most one update per ticket per poll.
// Missed windows are gone for good; the history log is the durable record.
type PollUpdatesUseCase struct {
	ticketRepo ticket.Repository
	watermarks WatermarkStore
	now        func() time.Time
	logger     logger.Interface
}

func NewPollUpdatesUseCase(
	ticketRepo ticket.Repository,
	watermarks WatermarkStore,
	logger logger.Interface,
) *PollUpdatesUseCase {
	return &PollUpdatesUseCase{
		ticketRepo: ticketRepo,
		watermarks: watermarks,
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *PollUpdatesUseCase) Execute(ctx context.Context, cmd PollUpdatesCommand) (*PollUpdatesResult, error) {
	uc.logger.Debugw("executing poll updates use case", "session_id", cmd.SessionID, "user_id", cmd.UserID)

	now := uc.now()

	watermark, ok, err := uc.watermarks.Get(ctx, cmd.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to read watermark", "session_id", cmd.SessionID, "error", err)
		return nil, err
	}
	if !ok {
		if err := uc.watermarks.Set(ctx, cmd.SessionID, now); err != nil {
			return nil, err
		}
		return &PollUpdatesResult{Updates: []Update{}}, nil
	}

	updates := []Update{}
	notified := map[uint]bool{}

	// Ticket creations come first so they win the one-per-ticket slot.
	created, err := uc.ticketRepo.FindCreatedAfter(ctx, watermark)
	if err != nil {
		return nil, err
	}
	for _, t := range created {
		if t.CreatorID() == cmd.UserID || notified[t.ID()] {
			continue
		}
		if !uc.interestedInCreation(cmd, t) {
			continue
		}
		notified[t.ID()] = true
		updates = append(updates, Update{
			Type:     UpdateNewTicket,
			TicketID: t.ID(),
			Message:  fmt.Sprintf("New ticket #%d: %s", t.ID(), t.Title()),
			Link:     fmt.Sprintf("/tickets/%d", t.ID()),
		})
	}

	comments, err := uc.ticketRepo.FindCommentsCreatedAfter(ctx, watermark)
	if err != nil {
		return nil, err
	}
	ticketCache := map[uint]*ticket.Ticket{}
	for _, c := range comments {
		if c.AuthorID() == cmd.UserID || notified[c.TicketID()] {
			continue
		}
		t, ok := ticketCache[c.TicketID()]
		if !ok {
			t, err = uc.ticketRepo.FindByID(ctx, c.TicketID())
			if err != nil {
				// The ticket may have been deleted since the comment landed.
				uc.logger.Warnw("skipping comment on unloadable ticket", "ticket_id", c.TicketID(), "error", err)
				continue
			}
			ticketCache[c.TicketID()] = t
		}
		if !uc.interestedInComment(cmd, t) {
			continue
		}
		notified[t.ID()] = true
		updates = append(updates, Update{
			Type:     UpdateNewComment,
			TicketID: t.ID(),
			Message:  fmt.Sprintf("New comment on ticket #%d: %s", t.ID(), t.Title()),
			Link:     fmt.Sprintf("/tickets/%d", t.ID()),
		})
	}

	// The watermark always advances, found updates or not.
	if err := uc.watermarks.Set(ctx, cmd.SessionID, now); err != nil {
		return nil, err
	}

	return &PollUpdatesResult{Updates: updates}, nil
}

// interestedInCreation: technicians of the target sector and all
// administrators hear about new tickets.
func (uc *PollUpdatesUseCase) interestedInCreation(cmd PollUpdatesCommand, t *ticket.Ticket) bool {
	if cmd.Role.IsAdministrator() {
		return true
	}
	return cmd.Role == authorization.RoleTechnician && t.TargetSector() == cmd.Sector
}

// interestedInComment: the ticket's creator and its current assignee hear
// about new comments.
func (uc *PollUpdatesUseCase) interestedInComment(cmd PollUpdatesCommand, t *ticket.Ticket) bool {
	if t.CreatorID() == cmd.UserID {
		return true
	}
	assignee := t.AssigneeID()
	return assignee != nil && *assignee == cmd.UserID
}
