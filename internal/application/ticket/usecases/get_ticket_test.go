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
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/services/markdown"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)
	alice := testUser(t, 1, "alice", vo.SectorSales, authorization.RoleCollaborator)
	bob := testUser(t, 2, "bob", vo.SectorIT, authorization.RoleTechnician)

	comment, err := ticket.NewComment(10, 2, "looking into it now", "")
	require.NoError(t, err)
	require.NoError(t, comment.SetID(1))

	actorID := uint(2)
	entry, err := ticket.NewHistoryEntry(10, &actorID, ticket.FieldStatus, "Open", "In Progress")
	require.NoError(t, err)
	require.NoError(t, entry.SetID(1))

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		FindCommentsByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{comment}, nil
		},
	}
	historyRepo := &mockHistoryRepository{
		FindByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
			return []*ticket.HistoryEntry{entry}, nil
		},
	}
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{alice, bob}, nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, historyRepo, userRepo, markdown.NewService(), &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, Actor: collaboratorActor(1, vo.SectorSales)})

	require.NoError(t, err)
	assert.Equal(t, "alice", result.CreatorName)
	assert.Equal(t, ticket.UnassignedDisplay, result.AssigneeName)
	assert.NotEmpty(t, result.DescriptionHTML)

	require.Len(t, result.Comments, 1)
	assert.Equal(t, "bob", result.Comments[0].AuthorName)
	assert.NotEmpty(t, result.Comments[0].ContentHTML)

	require.Len(t, result.History, 1)
	assert.Equal(t, "bob", result.History[0].ActorName)
	assert.Equal(t, "Open", result.History[0].OldValue)
	assert.Equal(t, "In Progress", result.History[0].NewValue)
}

func TestGetTicketUseCase_Execute_Forbidden(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewGetTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{}, markdown.NewService(), &mockLogger{})
	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 10, Actor: collaboratorActor(9, vo.SectorHR)})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{}, markdown.NewService(), &mockLogger{})
	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 99, Actor: adminActor(3)})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
