package user

import (
	"context"

	"helpdesk/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// ListAssignable returns active technicians and administrators of the
	// given sector, the candidate assignees for a ticket targeting it.
	ListAssignable(ctx context.Context, sector valueobjects.Sector) ([]*User, error)
	// ListTechniciansBySector returns active technicians (not administrators)
	// whose home sector matches.
	ListTechniciansBySector(ctx context.Context, sector valueobjects.Sector) ([]*User, error)
	ListAdministrators(ctx context.Context) ([]*User, error)
}
