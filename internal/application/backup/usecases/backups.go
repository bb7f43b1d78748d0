package usecases

import (
	"context"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// Artifact is one point-in-time database snapshot on disk.
type Artifact struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotService copies the persisted store to timestamped artifacts and
// manages them. Only meaningful for file-backed databases.
type SnapshotService interface {
	Create(ctx context.Context) (*Artifact, error)
	// List returns artifacts newest-first.
	List(ctx context.Context) ([]Artifact, error)
	Delete(ctx context.Context, name string) error
	// Path resolves an artifact name to its absolute path for download.
	Path(name string) (string, error)
}

type CreateBackupExecutor interface {
	Execute(ctx context.Context, cmd BackupCommand) (*Artifact, error)
}

type ListBackupsExecutor interface {
	Execute(ctx context.Context, cmd BackupCommand) ([]Artifact, error)
}

type DeleteBackupExecutor interface {
	Execute(ctx context.Context, cmd DeleteBackupCommand) error
}

type BackupCommand struct {
	ActorRole authorization.UserRole
}

type DeleteBackupCommand struct {
	ActorRole authorization.UserRole
	Name      string
}

// CreateBackupUseCase snapshots the database file. The cron-style caller is
// external; this core only exposes the point-in-time operation.
type CreateBackupUseCase struct {
	snapshots  SnapshotService
	fileBacked bool
	logger     logger.Interface
}

func NewCreateBackupUseCase(snapshots SnapshotService, fileBacked bool, logger logger.Interface) *CreateBackupUseCase {
	return &CreateBackupUseCase{snapshots: snapshots, fileBacked: fileBacked, logger: logger}
}

func (uc *CreateBackupUseCase) Execute(ctx context.Context, cmd BackupCommand) (*Artifact, error) {
	uc.logger.Infow("executing create backup use case")

	if !cmd.ActorRole.IsAdministrator() {
		return nil, errors.NewForbiddenError("only administrators can manage backups")
	}
	if !uc.fileBacked {
		return nil, errors.NewValidationError("backups require a file-backed database")
	}

	artifact, err := uc.snapshots.Create(ctx)
	if err != nil {
		uc.logger.Errorw("failed to create backup", "error", err)
		return nil, err
	}

	uc.logger.Infow("backup created", "name", artifact.Name, "size", artifact.Size)
	return artifact, nil
}

type ListBackupsUseCase struct {
	snapshots SnapshotService
	logger    logger.Interface
}

func NewListBackupsUseCase(snapshots SnapshotService, logger logger.Interface) *ListBackupsUseCase {
	return &ListBackupsUseCase{snapshots: snapshots, logger: logger}
}

func (uc *ListBackupsUseCase) Execute(ctx context.Context, cmd BackupCommand) ([]Artifact, error) {
	if !cmd.ActorRole.IsAdministrator() {
		return nil, errors.NewForbiddenError("only administrators can manage backups")
	}

	artifacts, err := uc.snapshots.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list backups", "error", err)
		return nil, err
	}
	return artifacts, nil
}

type DeleteBackupUseCase struct {
	snapshots SnapshotService
	logger    logger.Interface
}

func NewDeleteBackupUseCase(snapshots SnapshotService, logger logger.Interface) *DeleteBackupUseCase {
	return &DeleteBackupUseCase{snapshots: snapshots, logger: logger}
}

func (uc *DeleteBackupUseCase) Execute(ctx context.Context, cmd DeleteBackupCommand) error {
	uc.logger.Infow("executing delete backup use case", "name", cmd.Name)

	if !cmd.ActorRole.IsAdministrator() {
		return errors.NewForbiddenError("only administrators can manage backups")
	}

	if err := uc.snapshots.Delete(ctx, cmd.Name); err != nil {
		uc.logger.Errorw("failed to delete backup", "name", cmd.Name, "error", err)
		return err
	}
	return nil
}
