// Package storage persists uploaded files on the local filesystem. Stored
// names are uuid-prefixed so original names never collide or traverse paths.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "helpdesk/internal/shared/errors"
)

// Kind selects the extension allowlist for an upload.
type Kind string

const (
	// KindTicketAttachment accepts images only.
	KindTicketAttachment Kind = "ticket_attachment"
	// KindCommentAttachment accepts images and documents.
	KindCommentAttachment Kind = "comment_attachment"
	// KindChatAttachment accepts images and documents.
	KindChatAttachment Kind = "chat_attachment"
	// KindLogo accepts images only.
	KindLogo Kind = "logo"
)

// MaxUploadSize caps uploads at 16MB.
const MaxUploadSize = 16 << 20

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var documentExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".csv":  true,
}

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Store writes the upload and returns the stored name to persist on the
// owning record. The reader is capped at MaxUploadSize.
func (s *LocalStore) Store(r io.Reader, originalName string, kind Kind) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtension(ext, kind) {
		return "", apperrors.NewValidationError(fmt.Sprintf("file type %s is not allowed", ext))
	}

	storedName := uuid.NewString() + ext
	path := filepath.Join(s.dir, storedName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	// Read one byte past the cap to tell "exactly at the limit" apart from
	// "over it".
	written, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(path)
		return "", apperrors.NewValidationError("file exceeds the 16MB upload limit")
	}

	return storedName, nil
}

// Open returns the stored file for download. The stored name is reduced to
// its base so a crafted value cannot escape the upload directory.
func (s *LocalStore) Open(storedName string) (*os.File, error) {
	path := filepath.Join(s.dir, filepath.Base(storedName))

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError("file not found")
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalStore) Remove(storedName string) error {
	path := filepath.Join(s.dir, filepath.Base(storedName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func allowedExtension(ext string, kind Kind) bool {
	switch kind {
	case KindTicketAttachment, KindLogo:
		return imageExtensions[ext]
	case KindCommentAttachment, KindChatAttachment:
		return imageExtensions[ext] || documentExtensions[ext]
	}
	return false
}
