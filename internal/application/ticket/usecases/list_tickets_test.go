package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)
	alice := testUser(t, 1, "alice", vo.SectorSales, authorization.RoleCollaborator)

	var gotVis ticket.Visibility
	var gotFilter ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotVis = vis
			gotFilter = filter
			return []*ticket.Ticket{tk}, nil
		},
	}
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{alice}, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: collaboratorActor(1, vo.SectorSales)})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "alice", result[0].CreatorName)
	assert.Equal(t, ticket.UnassignedDisplay, result[0].AssigneeName)

	require.NotNil(t, gotVis.CreatorID)
	assert.Equal(t, uint(1), *gotVis.CreatorID)
	assert.False(t, gotFilter.IncludeFinished, "finished tickets hidden by default")
	assert.Equal(t, ticket.OrderNewest, gotFilter.Order)
}

func TestListTicketsUseCase_Execute_SearchWidensScope(t *testing.T) {
	var gotFilter ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockUserRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor: adminActor(3),
		Query: "printer",
	})

	require.NoError(t, err)
	assert.Equal(t, "printer", gotFilter.Query)
	assert.True(t, gotFilter.IncludeFinished, "a search always covers resolved and closed tickets")
}

func TestListTicketsUseCase_Execute_KanbanOrder(t *testing.T) {
	var gotFilter ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockUserRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor:  technicianActor(2, vo.SectorIT),
		Kanban: true,
	})

	require.NoError(t, err)
	assert.Equal(t, ticket.OrderKanban, gotFilter.Order)
}
