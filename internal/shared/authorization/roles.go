// Package authorization defines the role model and the role-based gates
// shared by the domain predicates, the HTTP middleware, and the casbin
// policy seed.
package authorization

type UserRole string

const (
	RoleCollaborator  UserRole = "collaborator"
	RoleTechnician    UserRole = "technician"
	RoleAdministrator UserRole = "administrator"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdministrator() bool {
	return r == RoleAdministrator
}

// IsTechnician reports whether the role carries technician privileges.
// Administrators can do everything a technician can.
func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician || r == RoleAdministrator
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleCollaborator, RoleTechnician, RoleAdministrator:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCollaborator
}

func AllRoles() []UserRole {
	return []UserRole{RoleCollaborator, RoleTechnician, RoleAdministrator}
}
