package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

func makeTicket(t *testing.T, id, creatorID uint, origin, target vo.Sector, assignee *uint) *Ticket {
	t.Helper()
	tk, err := NewTicket("Printer broken", "The office printer stopped working",
		creatorID, origin, target, vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	if assignee != nil {
		tk.AssignTo(assignee)
	}
	return tk
}

func TestCanView(t *testing.T) {
	techID := uint(20)

	collaborator := Actor{ID: 1, Role: authorization.RoleCollaborator, Sector: vo.SectorSales}
	technician := Actor{ID: techID, Role: authorization.RoleTechnician, Sector: vo.SectorIT}
	admin := Actor{ID: 30, Role: authorization.RoleAdministrator, Sector: vo.SectorHR}

	ownTicket := makeTicket(t, 1, 1, vo.SectorSales, vo.SectorIT, nil)
	foreignTicket := makeTicket(t, 2, 2, vo.SectorHR, vo.SectorMarketing, nil)
	assignedTicket := makeTicket(t, 3, 2, vo.SectorHR, vo.SectorMarketing, &techID)

	tests := []struct {
		name   string
		actor  Actor
		ticket *Ticket
		want   bool
	}{
		{"creator sees own ticket", collaborator, ownTicket, true},
		{"collaborator cannot see foreign ticket", collaborator, foreignTicket, false},
		{"technician sees target-sector ticket", technician, ownTicket, true},
		{"technician cannot see out-of-sector ticket", technician, foreignTicket, false},
		{"technician sees assigned ticket outside sector", technician, assignedTicket, true},
		{"administrator sees everything", admin, foreignTicket, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.actor, tt.ticket))
		})
	}
}

func TestCanView_OriginSectorCountsForTechnicians(t *testing.T) {
	technician := Actor{ID: 5, Role: authorization.RoleTechnician, Sector: vo.SectorSales}
	ticket := makeTicket(t, 4, 9, vo.SectorSales, vo.SectorIT, nil)

	assert.True(t, CanView(technician, ticket))
}

func TestCanUpdate(t *testing.T) {
	assert.False(t, CanUpdate(Actor{ID: 1, Role: authorization.RoleCollaborator}))
	assert.True(t, CanUpdate(Actor{ID: 2, Role: authorization.RoleTechnician}))
	assert.True(t, CanUpdate(Actor{ID: 3, Role: authorization.RoleAdministrator}))
}

// Visibility and CanView must agree: every ticket matched by the filter is
// viewable and every viewable ticket is matched by the filter.
func TestVisibilityMatchesCanView(t *testing.T) {
	techID := uint(20)
	otherTechID := uint(21)

	actors := []Actor{
		{ID: 1, Role: authorization.RoleCollaborator, Sector: vo.SectorSales},
		{ID: techID, Role: authorization.RoleTechnician, Sector: vo.SectorIT},
		{ID: 30, Role: authorization.RoleAdministrator, Sector: vo.SectorHR},
	}

	tickets := []*Ticket{
		makeTicket(t, 1, 1, vo.SectorSales, vo.SectorIT, nil),
		makeTicket(t, 2, 2, vo.SectorHR, vo.SectorMarketing, nil),
		makeTicket(t, 3, 2, vo.SectorHR, vo.SectorMarketing, &techID),
		makeTicket(t, 4, 2, vo.SectorHR, vo.SectorMarketing, &otherTechID),
		makeTicket(t, 5, techID, vo.SectorIT, vo.SectorSales, nil),
		makeTicket(t, 6, 2, vo.SectorIT, vo.SectorBilling, nil),
		makeTicket(t, 7, 1, vo.SectorMarketing, vo.SectorIT, nil),
	}

	for _, actor := range actors {
		vis := VisibilityFor(actor)
		for _, tk := range tickets {
			assert.Equal(t, CanView(actor, tk), vis.Matches(tk),
				"actor %d role %s ticket %d", actor.ID, actor.Role, tk.ID())
		}
	}
}
