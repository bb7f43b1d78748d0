package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   uint
	Actor      ticket.Actor
	Content    string
	Attachment string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

// AddCommentUseCase appends a comment to a ticket the actor can see.
// Comments never produce history entries; the timeline only tracks field
// changes.
type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddCommentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !ticket.CanView(cmd.Actor, t) {
		uc.logger.Warnw("actor cannot comment on ticket outside their scope", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.ID, cmd.Content, cmd.Attachment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return &AddCommentResult{CommentID: comment.ID(), CreatedAt: comment.CreatedAt()}, nil
}
