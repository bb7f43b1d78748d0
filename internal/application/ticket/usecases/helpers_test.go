package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

func testUser(t *testing.T, id uint, name string, sector vo.Sector, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser(name, name+"@example.com", sector, role, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func testTicket(t *testing.T, id, creatorID uint, origin, target vo.Sector) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("VPN keeps dropping", "The VPN connection drops every few minutes", creatorID, origin, target, vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	return tk
}

func adminActor(id uint) ticket.Actor {
	return ticket.Actor{ID: id, Role: authorization.RoleAdministrator, Sector: vo.SectorIT}
}

func technicianActor(id uint, sector vo.Sector) ticket.Actor {
	return ticket.Actor{ID: id, Role: authorization.RoleTechnician, Sector: sector}
}

func collaboratorActor(id uint, sector vo.Sector) ticket.Actor {
	return ticket.Actor{ID: id, Role: authorization.RoleCollaborator, Sector: sector}
}
