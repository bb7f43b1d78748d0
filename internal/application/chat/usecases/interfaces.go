package usecases

import "context"

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error)
}

type ListConversationsExecutor interface {
	Execute(ctx context.Context, query ListConversationsQuery) (*ListConversationsResult, error)
}

type GetThreadExecutor interface {
	Execute(ctx context.Context, query GetThreadQuery) (*GetThreadResult, error)
}

type MarkThreadReadExecutor interface {
	Execute(ctx context.Context, cmd MarkThreadReadCommand) error
}

type UnreadSendersExecutor interface {
	Execute(ctx context.Context, query UnreadSendersQuery) (*UnreadSendersResult, error)
}
