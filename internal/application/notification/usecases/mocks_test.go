package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	FindByIDFunc                 func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindCreatedAfterFunc         func(ctx context.Context, after time.Time) ([]*ticket.Ticket, error)
	FindCommentsCreatedAfterFunc func(ctx context.Context, after time.Time) ([]*ticket.Comment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindCreatedAfter(ctx context.Context, after time.Time) ([]*ticket.Ticket, error) {
	if m.FindCreatedAfterFunc != nil {
		return m.FindCreatedAfterFunc(ctx, after)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error { return nil }

func (m *mockTicketRepository) FindCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return nil, nil
}

func (m *mockTicketRepository) FindCommentsCreatedAfter(ctx context.Context, after time.Time) ([]*ticket.Comment, error) {
	if m.FindCommentsCreatedAfterFunc != nil {
		return m.FindCommentsCreatedAfterFunc(ctx, after)
	}
	return nil, nil
}

type memoryWatermarkStore struct {
	marks map[string]time.Time
}

func newMemoryWatermarkStore() *memoryWatermarkStore {
	return &memoryWatermarkStore{marks: map[string]time.Time{}}
}

func (s *memoryWatermarkStore) Get(ctx context.Context, sessionID string) (time.Time, bool, error) {
	t, ok := s.marks[sessionID]
	return t, ok, nil
}

func (s *memoryWatermarkStore) Set(ctx context.Context, sessionID string, t time.Time) error {
	s.marks[sessionID] = t
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
