package setting

import "context"

type Repository interface {
	// Find returns the singleton settings row, or a not-found error when it
	// has never been written.
	Find(ctx context.Context) (*SystemSettings, error)
	Save(ctx context.Context, s *SystemSettings) error
	Update(ctx context.Context, s *SystemSettings) error
}
