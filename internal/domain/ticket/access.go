package ticket

import (
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

// Actor is the request-scoped view of the authenticated user that the
// access predicates operate on. It is always passed explicitly; there is
// no ambient login state.
type Actor struct {
	ID     uint
	Role   authorization.UserRole
	Sector vo.Sector
}

// CanView reports whether the actor may see the ticket. Collaborators see
// their own tickets; technicians additionally see tickets touching their
// sector or assigned to them; administrators see everything.
func CanView(actor Actor, t *Ticket) bool {
	if t == nil {
		return false
	}
	if actor.Role.IsAdministrator() {
		return true
	}
	if t.CreatorID() == actor.ID {
		return true
	}
	if actor.Role.IsTechnician() {
		if t.OriginSector() == actor.Sector || t.TargetSector() == actor.Sector {
			return true
		}
		if assignee := t.AssigneeID(); assignee != nil && *assignee == actor.ID {
			return true
		}
	}
	return false
}

// CanUpdate reports whether the actor may change status, priority or
// assignment. Only the actor's role matters, never the ticket's state.
func CanUpdate(actor Actor) bool {
	return actor.Role.IsTechnician()
}

// Visibility is the composable ticket filter derived from an actor. The
// repository translates it into SQL so that list, kanban and search all
// share the same scope instead of filtering after the fact.
type Visibility struct {
	// All grants unrestricted visibility (administrators).
	All bool
	// Sector scopes to tickets whose origin or target sector matches, or
	// which are assigned to ActorID (technicians). Nil means not
	// sector-scoped.
	Sector *vo.Sector
	// CreatorID scopes to the actor's own tickets (collaborators). Nil
	// means not creator-scoped.
	CreatorID *uint

	ActorID uint
}

// VisibilityFor derives the filter matching CanView for the actor.
func VisibilityFor(actor Actor) Visibility {
	v := Visibility{ActorID: actor.ID}

	switch {
	case actor.Role.IsAdministrator():
		v.All = true
	case actor.Role.IsTechnician():
		sector := actor.Sector
		v.Sector = &sector
	default:
		creatorID := actor.ID
		v.CreatorID = &creatorID
	}

	return v
}

// Matches applies the visibility filter in memory. The repository is the
// authoritative implementation; this exists for the access predicates'
// consistency checks and for tests.
func (v Visibility) Matches(t *Ticket) bool {
	if t == nil {
		return false
	}
	if v.All {
		return true
	}
	if v.Sector != nil {
		if t.OriginSector() == *v.Sector || t.TargetSector() == *v.Sector {
			return true
		}
		if assignee := t.AssigneeID(); assignee != nil && *assignee == v.ActorID {
			return true
		}
		// Technicians still see tickets they opened themselves.
		return t.CreatorID() == v.ActorID
	}
	if v.CreatorID != nil {
		return t.CreatorID() == *v.CreatorID
	}
	return false
}
