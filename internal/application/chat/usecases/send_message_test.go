package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/chat"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func chatUser(t *testing.T, id uint, name string) *user.User {
	t.Helper()
	u, err := user.NewUser(name, name+"@example.com", vo.SectorIT, authorization.RoleCollaborator, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestSendMessageUseCase_Execute(t *testing.T) {
	bob := chatUser(t, 2, "bob")

	var saved *chat.Message
	chatRepo := &mockChatRepository{
		SaveFunc: func(ctx context.Context, m *chat.Message) error {
			require.NoError(t, m.SetID(1))
			saved = m
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return bob, nil },
	}

	uc := NewSendMessageUseCase(chatRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), SendMessageCommand{
		SenderID:   1,
		ReceiverID: 2,
		Content:    "lunch?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.MessageID)
	require.NotNil(t, saved)
	assert.False(t, saved.IsRead(), "sending never marks anything read")
}

func TestSendMessageUseCase_Execute_ValidationErrors(t *testing.T) {
	bob := chatUser(t, 2, "bob")
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return bob, nil },
	}

	uc := NewSendMessageUseCase(&mockChatRepository{}, userRepo, &mockLogger{})

	// Both content and attachment missing.
	_, err := uc.Execute(context.Background(), SendMessageCommand{SenderID: 1, ReceiverID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	// Messaging yourself.
	_, err = uc.Execute(context.Background(), SendMessageCommand{SenderID: 2, ReceiverID: 2, Content: "hi"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSendMessageUseCase_Execute_UnknownRecipient(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewSendMessageUseCase(&mockChatRepository{}, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), SendMessageCommand{SenderID: 1, ReceiverID: 99, Content: "hi"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSendMessageUseCase_Execute_DeactivatedRecipient(t *testing.T) {
	bob := chatUser(t, 2, "bob")
	bob.Deactivate()
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return bob, nil },
	}

	uc := NewSendMessageUseCase(&mockChatRepository{}, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), SendMessageCommand{SenderID: 1, ReceiverID: 2, Content: "hi"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
