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
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func TestUpdateTicketUseCase_Execute_RecordsHistoryPerField(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)
	bob := testUser(t, 2, "bob", vo.SectorIT, authorization.RoleTechnician)

	var savedEntries []*ticket.HistoryEntry
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			savedEntries = append(savedEntries, entry)
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return bob, nil },
	}

	uc := NewUpdateTicketUseCase(ticketRepo, historyRepo, userRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    10,
		Actor:       technicianActor(2, vo.SectorIT),
		Status:      strPtr("In Progress"),
		Priority:    strPtr("high"),
		AssigneeID:  uintPtr(2),
		AssigneeSet: true,
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"status", "priority", "assigned_to"}, result.ChangedFields)
	require.Len(t, savedEntries, 3)

	byField := map[ticket.HistoryField]*ticket.HistoryEntry{}
	for _, e := range savedEntries {
		byField[e.Field()] = e
	}
	assert.Equal(t, "Open", byField[ticket.FieldStatus].OldValue())
	assert.Equal(t, "In Progress", byField[ticket.FieldStatus].NewValue())
	assert.Equal(t, "Medium", byField[ticket.FieldPriority].OldValue())
	assert.Equal(t, "High", byField[ticket.FieldPriority].NewValue())
	assert.Equal(t, ticket.UnassignedDisplay, byField[ticket.FieldAssignedTo].OldValue())
	assert.Equal(t, "bob", byField[ticket.FieldAssignedTo].NewValue(), "assignee recorded by name")
}

func TestUpdateTicketUseCase_Execute_NoOpWritesNothing(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)

	updated := false
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			t.Fatal("no history entry expected for a no-op update")
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, historyRepo, &mockUserRepository{}, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 10,
		Actor:    technicianActor(2, vo.SectorIT),
		Status:   strPtr("Open"),
		Priority: strPtr("medium"),
	})

	require.NoError(t, err)
	assert.Empty(t, result.ChangedFields)
	assert.False(t, updated)
}

func TestUpdateTicketUseCase_Execute_CollaboratorForbidden(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, &mockUserRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 10,
		Actor:    collaboratorActor(1, vo.SectorSales),
		Status:   strPtr("Closed"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateTicketUseCase_Execute_Unassign(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)
	tk.AssignTo(uintPtr(2))
	bob := testUser(t, 2, "bob", vo.SectorIT, authorization.RoleTechnician)

	var savedEntries []*ticket.HistoryEntry
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	historyRepo := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
			savedEntries = append(savedEntries, entry)
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return bob, nil },
	}

	uc := NewUpdateTicketUseCase(ticketRepo, historyRepo, userRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    10,
		Actor:       adminActor(3),
		AssigneeID:  nil,
		AssigneeSet: true,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID)
	require.Len(t, savedEntries, 1)
	assert.Equal(t, "bob", savedEntries[0].OldValue())
	assert.Equal(t, ticket.UnassignedDisplay, savedEntries[0].NewValue())
}

func TestUpdateTicketUseCase_Execute_UnknownAssignee(t *testing.T) {
	tk := testTicket(t, 10, 1, vo.SectorSales, vo.SectorIT)

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockHistoryRepository{}, userRepo, &mockTxManager{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    10,
		Actor:       adminActor(3),
		AssigneeID:  uintPtr(99),
		AssigneeSet: true,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
