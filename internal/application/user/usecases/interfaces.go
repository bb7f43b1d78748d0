package usecases

import (
	"context"
	"time"
)

// PasswordHasher wraps the one-way credential scheme. Plaintext never
// leaves this boundary.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// TokenService issues the signed session tokens handed to clients.
type TokenService interface {
	GenerateAccessToken(userID uint, sessionID, role string) (string, time.Time, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]UserDTO, error)
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) error
}

type ToggleActiveExecutor interface {
	Execute(ctx context.Context, cmd ToggleActiveCommand) (*ToggleActiveResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type ListAssignableExecutor interface {
	Execute(ctx context.Context, query ListAssignableQuery) ([]UserDTO, error)
}
