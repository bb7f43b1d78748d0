package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/chat"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func TestGetThreadUseCase_Execute(t *testing.T) {
	now := time.Now()
	alice := chatUser(t, 1, "alice")
	bob := chatUser(t, 2, "bob")

	chatRepo := &mockChatRepository{
		FindThreadFunc: func(ctx context.Context, userA, userB uint) ([]*chat.Message, error) {
			return []*chat.Message{
				threadMessage(t, 1, 1, 2, "lunch?", now.Add(-2*time.Minute), true),
				threadMessage(t, 2, 2, 1, "sure, noon", now.Add(-time.Minute), false),
			}, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 1 {
				return alice, nil
			}
			return bob, nil
		},
	}

	uc := NewGetThreadUseCase(chatRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetThreadQuery{UserID: 1, OtherID: 2})

	require.NoError(t, err)
	assert.Equal(t, "bob", result.PartnerName)
	require.Len(t, result.Messages, 2)

	assert.True(t, result.Messages[0].FromMe)
	assert.Equal(t, "alice", result.Messages[0].SenderName)
	assert.False(t, result.Messages[1].FromMe)
	assert.Equal(t, "bob", result.Messages[1].SenderName)
	assert.False(t, result.Messages[1].Read, "fetching a thread does not acknowledge messages")
}

func TestGetThreadUseCase_Execute_UnknownPartner(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewGetThreadUseCase(&mockChatRepository{}, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetThreadQuery{UserID: 1, OtherID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMarkThreadReadUseCase_Execute(t *testing.T) {
	calls := 0
	chatRepo := &mockChatRepository{
		MarkThreadReadFunc: func(ctx context.Context, userID, senderID uint) error {
			calls++
			assert.Equal(t, uint(1), userID)
			assert.Equal(t, uint(2), senderID)
			return nil
		},
	}

	uc := NewMarkThreadReadUseCase(chatRepo, &mockLogger{})
	require.NoError(t, uc.Execute(context.Background(), MarkThreadReadCommand{UserID: 1, SenderID: 2}))
	require.NoError(t, uc.Execute(context.Background(), MarkThreadReadCommand{UserID: 1, SenderID: 2}))
	assert.Equal(t, 2, calls, "acknowledging twice is harmless")
}

func TestUnreadSendersUseCase_Execute(t *testing.T) {
	chatRepo := &mockChatRepository{
		UnreadSenderIDsFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{2, 5}, nil
		},
	}

	uc := NewUnreadSendersUseCase(chatRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UnreadSendersQuery{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 5}, result.SenderIDs)
}

func TestUnreadSendersUseCase_Execute_EmptyNotNil(t *testing.T) {
	uc := NewUnreadSendersUseCase(&mockChatRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UnreadSendersQuery{UserID: 1})

	require.NoError(t, err)
	assert.NotNil(t, result.SenderIDs)
	assert.Empty(t, result.SenderIDs)
}
