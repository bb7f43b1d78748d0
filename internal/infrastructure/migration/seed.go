package migration

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const (
	defaultAdminName     = "Administrator"
	defaultAdminEmail    = "admin@company.local"
	defaultAdminPassword = "admin123"
)

type passwordHasher interface {
	Hash(plaintext string) (string, error)
}

// Seeder creates the bootstrap administrator so a fresh installation can be
// logged into. The password must be changed after first login.
type Seeder struct {
	userRepo user.Repository
	hasher   passwordHasher
	logger   logger.Interface
}

func NewSeeder(userRepo user.Repository, hasher passwordHasher, log logger.Interface) *Seeder {
	return &Seeder{userRepo: userRepo, hasher: hasher, logger: log}
}

func (s *Seeder) SeedDefaultAdmin(ctx context.Context) error {
	_, err := s.userRepo.FindByEmail(ctx, defaultAdminEmail)
	if err == nil {
		return nil
	}
	if !apperrors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	hash, err := s.hasher.Hash(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin, err := user.NewUser(
		defaultAdminName,
		defaultAdminEmail,
		valueobjects.SectorIT,
		authorization.RoleAdministrator,
		hash,
	)
	if err != nil {
		return fmt.Errorf("failed to build default admin: %w", err)
	}

	if err := s.userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save default admin: %w", err)
	}

	s.logger.Infow("seeded default administrator", "email", defaultAdminEmail)
	return nil
}
