package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)

	deleted := false
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			assert.Equal(t, uint(10), id)
			return nil
		},
	}

	uc := NewDeleteTicketUseCase(ticketRepo, &mockTxManager{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 10, Actor: adminActor(3)})

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteTicketUseCase_Execute_TechnicianForbidden(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockTicketRepository{}, &mockTxManager{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		TicketID: 10,
		Actor:    technicianActor(2, vo.SectorIT),
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewDeleteTicketUseCase(ticketRepo, &mockTxManager{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 99, Actor: adminActor(3)})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
