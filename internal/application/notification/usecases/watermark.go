package usecases

import (
	"context"
	"time"
)

// WatermarkStore keeps the per-session "last seen" instant the polling
// engine diffs against. Entries may expire with the session; a missing
// entry simply re-baselines the next poll.
type WatermarkStore interface {
	// Get returns the watermark for the session and whether one exists.
	Get(ctx context.Context, sessionID string) (time.Time, bool, error)
	Set(ctx context.Context, sessionID string, t time.Time) error
}
