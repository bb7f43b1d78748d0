package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                   func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                   func(ctx context.Context, id uint) error
	FindByIDFunc                 func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc                     func(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error)
	FindCreatedAfterFunc         func(ctx context.Context, after time.Time) ([]*ticket.Ticket, error)
	SaveCommentFunc              func(ctx context.Context, c *ticket.Comment) error
	FindCommentsByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	FindCommentsCreatedAfterFunc func(ctx context.Context, after time.Time) ([]*ticket.Comment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, vis ticket.Visibility, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, vis, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindCreatedAfter(ctx context.Context, after time.Time) ([]*ticket.Ticket, error) {
	if m.FindCreatedAfterFunc != nil {
		return m.FindCreatedAfterFunc(ctx, after)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockTicketRepository) FindCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.FindCommentsByTicketIDFunc != nil {
		return m.FindCommentsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindCommentsCreatedAfter(ctx context.Context, after time.Time) ([]*ticket.Comment, error) {
	if m.FindCommentsCreatedAfterFunc != nil {
		return m.FindCommentsCreatedAfterFunc(ctx, after)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	SaveFunc           func(ctx context.Context, entry *ticket.HistoryEntry) error
	FindByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, entry *ticket.HistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc                    func(ctx context.Context, u *user.User) error
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	DeleteFunc                  func(ctx context.Context, id uint) error
	FindByIDFunc                func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	ListFunc                    func(ctx context.Context) ([]*user.User, error)
	ListAssignableFunc          func(ctx context.Context, sector vo.Sector) ([]*user.User, error)
	ListTechniciansBySectorFunc func(ctx context.Context, sector vo.Sector) ([]*user.User, error)
	ListAdministratorsFunc      func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAssignable(ctx context.Context, sector vo.Sector) ([]*user.User, error) {
	if m.ListAssignableFunc != nil {
		return m.ListAssignableFunc(ctx, sector)
	}
	return nil, nil
}

func (m *mockUserRepository) ListTechniciansBySector(ctx context.Context, sector vo.Sector) ([]*user.User, error) {
	if m.ListTechniciansBySectorFunc != nil {
		return m.ListTechniciansBySectorFunc(ctx, sector)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAdministrators(ctx context.Context) ([]*user.User, error) {
	if m.ListAdministratorsFunc != nil {
		return m.ListAdministratorsFunc(ctx)
	}
	return nil, nil
}

// mockTxManager runs the function directly; rollback behavior is exercised
// by returning errors from the repository mocks.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockMailer struct {
	SendFunc func(ctx context.Context, to []string, subject, body string) error
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
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
