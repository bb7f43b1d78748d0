package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    ticket.Actor
}

// GetTicketUseCase assembles the full detail view: ticket, comments and
// history, with markdown bodies rendered to sanitized HTML and user IDs
// resolved to names.
type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Debugw("executing get ticket use case", "ticket_id", query.TicketID, "actor_id", query.Actor.ID)

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	if !ticket.CanView(query.Actor, t) {
		uc.logger.Warnw("actor cannot view ticket", "ticket_id", query.TicketID, "actor_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	comments, err := uc.ticketRepo.FindCommentsByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	history, err := uc.historyRepo.FindByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	names, err := uc.nameIndex(ctx)
	if err != nil {
		return nil, err
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(t.Description())
	if err != nil {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		descriptionHTML = ""
	}

	result := &dto.TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		DescriptionHTML: descriptionHTML,
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		OriginSector:    t.OriginSector().String(),
		TargetSector:    t.TargetSector().String(),
		CreatorID:       t.CreatorID(),
		CreatorName:     names[t.CreatorID()],
		AssigneeID:      t.AssigneeID(),
		AssigneeName:    ticket.UnassignedDisplay,
		Attachment:      t.Attachment(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ClosedAt:        t.ClosedAt(),
		Comments:        make([]dto.CommentDTO, 0, len(comments)),
		History:         make([]dto.HistoryDTO, 0, len(history)),
	}
	if assignee := t.AssigneeID(); assignee != nil {
		if name, ok := names[*assignee]; ok {
			result.AssigneeName = name
		}
	}

	for _, c := range comments {
		contentHTML, err := uc.markdown.ToHTMLSanitized(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment", "comment_id", c.ID(), "error", err)
			contentHTML = ""
		}
		result.Comments = append(result.Comments, dto.CommentDTO{
			ID:          c.ID(),
			AuthorID:    c.AuthorID(),
			AuthorName:  names[c.AuthorID()],
			Content:     c.Content(),
			ContentHTML: contentHTML,
			Attachment:  c.Attachment(),
			CreatedAt:   c.CreatedAt(),
		})
	}

	for _, h := range history {
		actorName := "System"
		if actorID := h.ActorID(); actorID != nil {
			if name, ok := names[*actorID]; ok {
				actorName = name
			}
		}
		result.History = append(result.History, dto.HistoryDTO{
			ID:        h.ID(),
			ActorName: actorName,
			Field:     string(h.Field()),
			OldValue:  h.OldValue(),
			NewValue:  h.NewValue(),
			LoggedAt:  h.LoggedAt(),
		})
	}

	return result, nil
}

func (uc *GetTicketUseCase) nameIndex(ctx context.Context) (map[uint]string, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}
	return names, nil
}
