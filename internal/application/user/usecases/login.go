package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	SessionID string
	User      UserDTO
}

// LoginUseCase authenticates by email and password and issues a session
// token. Each login gets a fresh session id, which also scopes the polling
// watermark.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	uc.logger.Infow("executing login use case", "email", email)

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same response as a bad password; do not leak which emails exist.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if !uc.hasher.Verify(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !u.IsActive() {
		uc.logger.Warnw("login attempt on deactivated account", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := uc.tokens.GenerateAccessToken(u.ID(), sessionID, string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "session_id", sessionID)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		SessionID: sessionID,
		User:      toUserDTO(u),
	}, nil
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Sector:    u.Sector().String(),
		Role:      string(u.Role()),
		Active:    u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
