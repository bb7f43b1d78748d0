package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	cmd    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.UpdateTicketResult
	err    error
	cmd    usecases.UpdateTicketCommand
}

func (m *mockUpdateTicketUC) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *usecases.ChangeStatusResult
	err    error
	cmd    usecases.ChangeStatusCommand
}

func (m *mockChangeStatusUC) Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *usecases.AddCommentResult
	err    error
}

func (m *mockAddCommentUC) Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result []dto.TicketSummaryDTO
	err    error
	query  usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]dto.TicketSummaryDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err error
	cmd usecases.DeleteTicketCommand
}

func (m *mockDeleteTicketUC) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
	m.cmd = cmd
	return m.err
}

type ticketHandlerMocks struct {
	create       *mockCreateTicketUC
	update       *mockUpdateTicketUC
	changeStatus *mockChangeStatusUC
	addComment   *mockAddCommentUC
	get          *mockGetTicketUC
	list         *mockListTicketsUC
	del          *mockDeleteTicketUC
}

func newTestTicketHandler() (*TicketHandler, *ticketHandlerMocks) {
	mocks := &ticketHandlerMocks{
		create:       &mockCreateTicketUC{},
		update:       &mockUpdateTicketUC{},
		changeStatus: &mockChangeStatusUC{},
		addComment:   &mockAddCommentUC{},
		get:          &mockGetTicketUC{},
		list:         &mockListTicketsUC{},
		del:          &mockDeleteTicketUC{},
	}
	handler := NewTicketHandler(
		mocks.create, mocks.update, mocks.changeStatus, mocks.addComment,
		mocks.get, mocks.list, mocks.del,
		testutil.NewMockLogger(),
	)
	return handler, mocks
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	handler, mocks := newTestTicketHandler()
	mocks.create.result = &usecases.CreateTicketResult{TicketID: 42, Status: "open", CreatedAt: time.Now()}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", CreateTicketRequest{
		Title:        "Printer is jammed",
		Description:  "The 3rd floor printer eats every second page.",
		TargetSector: "IT",
		Priority:     "medium",
	})
	testutil.SetAuthContext(c, 5, "collaborator", "Sales")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(5), mocks.create.cmd.CreatorID)
	assert.Equal(t, "IT", mocks.create.cmd.TargetSector)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, float64(42), data["TicketID"])
}

func TestTicketHandler_CreateTicket_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateTicketRequest
	}{
		{
			name: "title too short",
			req:  CreateTicketRequest{Title: "Hi", Description: "long enough description", TargetSector: "IT", Priority: "low"},
		},
		{
			name: "unknown sector",
			req:  CreateTicketRequest{Title: "Printer is jammed", Description: "long enough description", TargetSector: "Warehouse", Priority: "low"},
		},
		{
			name: "bad priority",
			req:  CreateTicketRequest{Title: "Printer is jammed", Description: "long enough description", TargetSector: "IT", Priority: "urgent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestTicketHandler()

			c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", tt.req)
			testutil.SetAuthContext(c, 5, "collaborator", "Sales")

			handler.CreateTicket(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, mocks.create.cmd.CreatorID)
		})
	}
}

func TestTicketHandler_ListTickets_QueryParams(t *testing.T) {
	handler, mocks := newTestTicketHandler()
	mocks.list.result = []dto.TicketSummaryDTO{{ID: 1, Title: "Printer is jammed"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{
		"q":                "printer",
		"include_finished": "true",
		"view":             "kanban",
	})
	testutil.SetAuthContext(c, 9, "technician", "IT")

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "printer", mocks.list.query.Query)
	assert.True(t, mocks.list.query.IncludeFinished)
	assert.True(t, mocks.list.query.Kanban)
	assert.Equal(t, ticket.Actor{ID: 9, Role: authorization.RoleTechnician, Sector: "IT"}, mocks.list.query.Actor)
}

func TestTicketHandler_UpdateTicket_UnassignFlag(t *testing.T) {
	handler, mocks := newTestTicketHandler()
	mocks.update.result = &usecases.UpdateTicketResult{TicketID: 3, Status: "in_progress"}

	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3", UpdateTicketRequest{Unassign: true})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 9, "technician", "IT")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mocks.update.cmd.AssigneeSet)
	assert.Nil(t, mocks.update.cmd.AssigneeID)
}

func TestTicketHandler_ChangeStatus_Forbidden(t *testing.T) {
	handler, mocks := newTestTicketHandler()
	mocks.changeStatus.err = errors.NewForbiddenError("you cannot change this ticket")

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/3/status", ChangeStatusRequest{Status: "resolved"})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 5, "collaborator", "Sales")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	handler, mocks := newTestTicketHandler()
	mocks.get.err = errors.NewNotFoundError("ticket not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/99", nil)
	testutil.SetURLParam(c, "id", "99")
	testutil.SetAuthContext(c, 5, "collaborator", "Sales")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_BadID(t *testing.T) {
	handler, _ := newTestTicketHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetAuthContext(c, 5, "collaborator", "Sales")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_DeleteTicket_NoContent(t *testing.T) {
	handler, mocks := newTestTicketHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/3", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 1, "administrator", "IT")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(3), mocks.del.cmd.TicketID)
}
