package ticket

import (
	"context"
	"time"
)

// Order selects list ordering.
type Order string

const (
	// OrderNewest sorts by creation time, newest first (list view).
	OrderNewest Order = "newest"
	// OrderKanban sorts by priority weight descending, then creation time
	// ascending (kanban board).
	OrderKanban Order = "kanban"
)

// Filter narrows a visibility-scoped listing. With an empty Query and
// IncludeFinished false, Resolved and Closed tickets are hidden; a search
// query always searches the full scope.
type Filter struct {
	// Query matches case-insensitively against the title substring or the
	// ticket id rendered as a string.
	Query           string
	IncludeFinished bool
	Order           Order
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket together with its comments and history
	// entries. Implementations must be transactional.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, vis Visibility, filter Filter) ([]*Ticket, error)
	// FindCreatedAfter returns tickets created strictly after the given
	// instant, for the polling engine.
	FindCreatedAfter(ctx context.Context, after time.Time) ([]*Ticket, error)

	SaveComment(ctx context.Context, c *Comment) error
	FindCommentsByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	// FindCommentsCreatedAfter returns comments created strictly after the
	// given instant, for the polling engine.
	FindCommentsCreatedAfter(ctx context.Context, after time.Time) ([]*Comment, error)
}

type HistoryRepository interface {
	Save(ctx context.Context, entry *HistoryEntry) error
	FindByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

// StatusCount, SectorCount, PriorityCount and CreatorCount are the grouped
// aggregates behind the dashboard and reports.
type StatusCount struct {
	Status string
	Count  int64
}

type SectorCount struct {
	Sector string
	Count  int64
}

type PriorityCount struct {
	Priority string
	Count    int64
}

type CreatorCount struct {
	CreatorID   uint
	CreatorName string
	Count       int64
}

type StatsRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByTargetSector(ctx context.Context) ([]SectorCount, error)
	CountByPriority(ctx context.Context) ([]PriorityCount, error)
	// CountByCreator returns per-creator ticket counts, descending.
	CountByCreator(ctx context.Context) ([]CreatorCount, error)
	// ClosedDurations returns closed_at - created_at for every ticket that
	// is Closed with a non-null closed timestamp.
	ClosedDurations(ctx context.Context) ([]time.Duration, error)
}
