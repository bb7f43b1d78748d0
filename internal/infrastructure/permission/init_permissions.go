package permission

import (
	"helpdesk/internal/shared/authorization"
)

type policy struct {
	role     string
	resource string
	action   string
}

// defaultPolicies is the seed policy set. Collaborators get no extra
// grants; their scope is the data-level visibility predicates.
var defaultPolicies = []policy{
	{string(authorization.RoleTechnician), "tickets", "update"},
	{string(authorization.RoleTechnician), "reports", "view"},
	{string(authorization.RoleAdministrator), "tickets", "update"},
	{string(authorization.RoleAdministrator), "tickets", "delete"},
	{string(authorization.RoleAdministrator), "users", "manage"},
	{string(authorization.RoleAdministrator), "settings", "manage"},
	{string(authorization.RoleAdministrator), "backups", "manage"},
	{string(authorization.RoleAdministrator), "reports", "view"},
}

// SeedDefaultPolicies installs the baseline grants, then persists them.
// Existing rows are left alone, so local policy edits survive restarts.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range defaultPolicies {
		if has, _ := e.enforcer.HasPolicy(p.role, p.resource, p.action); has {
			continue
		}
		if err := e.addPolicy(p.role, p.resource, p.action); err != nil {
			return err
		}
	}
	return e.enforcer.SavePolicy()
}
