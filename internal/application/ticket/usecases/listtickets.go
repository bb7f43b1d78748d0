package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor ticket.Actor

	// Query searches by title substring or ticket id. A non-empty query
	// widens the scope to include resolved and closed tickets.
	Query           string
	IncludeFinished bool
	// Kanban switches ordering to priority-weighted board order.
	Kanban bool
}

// ListTicketsUseCase lists tickets inside the actor's visibility scope.
// Without a search query, resolved and closed tickets stay hidden unless
// explicitly requested.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, userRepo user.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error) {
	uc.logger.Debugw("executing list tickets use case", "actor_id", query.Actor.ID, "query", query.Query)

	filter := ticket.Filter{
		Query:           query.Query,
		IncludeFinished: query.IncludeFinished || query.Query != "",
		Order:           ticket.OrderNewest,
	}
	if query.Kanban {
		filter.Order = ticket.OrderKanban
	}

	tickets, err := uc.ticketRepo.List(ctx, ticket.VisibilityFor(query.Actor), filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "actor_id", query.Actor.ID, "error", err)
		return nil, err
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}

	summaries := make([]dto.TicketSummaryDTO, 0, len(tickets))
	for _, t := range tickets {
		assigneeName := ticket.UnassignedDisplay
		if assignee := t.AssigneeID(); assignee != nil {
			if name, ok := names[*assignee]; ok {
				assigneeName = name
			}
		}
		summaries = append(summaries, dto.TicketSummaryDTO{
			ID:           t.ID(),
			Title:        t.Title(),
			Status:       t.Status().String(),
			Priority:     t.Priority().String(),
			OriginSector: t.OriginSector().String(),
			TargetSector: t.TargetSector().String(),
			CreatorName:  names[t.CreatorID()],
			AssigneeName: assigneeName,
			CreatedAt:    t.CreatedAt(),
			UpdatedAt:    t.UpdatedAt(),
			ClosedAt:     t.ClosedAt(),
		})
	}

	return summaries, nil
}
