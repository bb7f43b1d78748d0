package usecases

import (
	"context"

	"helpdesk/internal/domain/chat"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockChatRepository struct {
	SaveFunc              func(ctx context.Context, m *chat.Message) error
	FindThreadFunc        func(ctx context.Context, userA, userB uint) ([]*chat.Message, error)
	FindConversationsFunc func(ctx context.Context, userID uint) ([]chat.ConversationSummary, error)
	UnreadSenderIDsFunc   func(ctx context.Context, userID uint) ([]uint, error)
	MarkThreadReadFunc    func(ctx context.Context, userID, senderID uint) error
}

func (m *mockChatRepository) Save(ctx context.Context, msg *chat.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockChatRepository) FindThread(ctx context.Context, userA, userB uint) ([]*chat.Message, error) {
	if m.FindThreadFunc != nil {
		return m.FindThreadFunc(ctx, userA, userB)
	}
	return nil, nil
}

func (m *mockChatRepository) FindConversations(ctx context.Context, userID uint) ([]chat.ConversationSummary, error) {
	if m.FindConversationsFunc != nil {
		return m.FindConversationsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockChatRepository) UnreadSenderIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.UnreadSenderIDsFunc != nil {
		return m.UnreadSenderIDsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockChatRepository) MarkThreadRead(ctx context.Context, userID, senderID uint) error {
	if m.MarkThreadReadFunc != nil {
		return m.MarkThreadReadFunc(ctx, userID, senderID)
	}
	return nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc     func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAssignable(ctx context.Context, sector vo.Sector) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListTechniciansBySector(ctx context.Context, sector vo.Sector) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListAdministrators(ctx context.Context) ([]*user.User, error) {
	return nil, nil
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
