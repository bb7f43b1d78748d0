package user

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

// User represents an employee account. The role and home sector together
// determine everything the account may see and do.
type User struct {
	id           uint
	name         string
	email        string
	sector       valueobjects.Sector
	role         authorization.UserRole
	active       bool
	passwordHash string
	createdAt    time.Time
}

func NewUser(name, email string, sector valueobjects.Sector, role authorization.UserRole, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return nil, fmt.Errorf("name must be between 2 and 100 characters")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !isValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	if !sector.IsValid() {
		return nil, fmt.Errorf("invalid sector: %s", sector)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		name:         name,
		email:        email,
		sector:       sector,
		role:         role,
		active:       true,
		passwordHash: passwordHash,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	name, email string,
	sector valueobjects.Sector,
	role authorization.UserRole,
	active bool,
	passwordHash string,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		sector:       sector,
		role:         role,
		active:       active,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) Sector() valueobjects.Sector  { return u.sector }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.active }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) CreatedAt() time.Time         { return u.createdAt }

func (u *User) IsAdministrator() bool { return u.role.IsAdministrator() }
func (u *User) IsTechnician() bool    { return u.role.IsTechnician() }

// SetID sets the user ID (only for persistence layer use).
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Activate() {
	u.active = true
}

func (u *User) Deactivate() {
	u.active = false
}

// ChangePasswordHash replaces the stored credential. The plaintext never
// reaches the domain layer.
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	return nil
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}
