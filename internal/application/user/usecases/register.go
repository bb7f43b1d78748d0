package usecases

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterUserCommand struct {
	ActorRole authorization.UserRole

	Name     string
	Email    string
	Sector   string
	Role     string
	Password string
}

type RegisterUserResult struct {
	UserID    uint
	CreatedAt time.Time
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Sector    string    `json:"sector"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterUserUseCase creates an account. Administrators only; there is no
// self-service signup.
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if !cmd.ActorRole.IsAdministrator() {
		return nil, errors.NewForbiddenError("only administrators can register users")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	sector, err := vo.NewSector(cmd.Sector)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("role must be collaborator, technician or administrator")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process credentials")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, sector, role, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", role)

	return &RegisterUserResult{UserID: newUser.ID(), CreatedAt: newUser.CreatedAt()}, nil
}
