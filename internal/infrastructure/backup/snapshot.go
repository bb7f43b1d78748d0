// Package backup snapshots the sqlite database file into a backups
// directory. A snapshot is a plain file copy taken through the running
// connection's WAL checkpoint, good enough for an internal tool.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/application/backup/usecases"
	apperrors "helpdesk/internal/shared/errors"
)

const artifactPrefix = "helpdesk_"

type FileSnapshotService struct {
	db           *gorm.DB
	databasePath string
	backupDir    string
}

func NewFileSnapshotService(db *gorm.DB, databasePath, backupDir string) (*FileSnapshotService, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	return &FileSnapshotService{
		db:           db,
		databasePath: databasePath,
		backupDir:    backupDir,
	}, nil
}

func (s *FileSnapshotService) Create(ctx context.Context) (*usecases.Artifact, error) {
	// Flush the WAL so the main database file is complete before copying.
	if err := s.db.WithContext(ctx).Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		return nil, fmt.Errorf("failed to checkpoint database: %w", err)
	}

	name := artifactPrefix + time.Now().Format("20060102_150405") + ".db"
	destPath := filepath.Join(s.backupDir, name)

	if err := copyFile(s.databasePath, destPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup: %w", err)
	}

	return &usecases.Artifact{
		Name:      name,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

func (s *FileSnapshotService) List(ctx context.Context) ([]usecases.Artifact, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	artifacts := make([]usecases.Artifact, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), artifactPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		artifacts = append(artifacts, usecases.Artifact{
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].CreatedAt.After(artifacts[j].CreatedAt)
	})

	return artifacts, nil
}

func (s *FileSnapshotService) Delete(ctx context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return apperrors.NewNotFoundError("backup not found")
		}
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// Path resolves an artifact name for download. Names are restricted to the
// snapshot naming scheme so no other file can be reached.
func (s *FileSnapshotService) Path(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || !strings.HasPrefix(base, artifactPrefix) || !strings.HasSuffix(base, ".db") {
		return "", apperrors.NewValidationError("invalid backup name")
	}
	return filepath.Join(s.backupDir, base), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to copy database file: %w", err)
	}

	return out.Sync()
}
