package usecases

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	ActorRole authorization.UserRole
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]UserDTO, error) {
	if !query.ActorRole.IsAdministrator() {
		return nil, errors.NewForbiddenError("only administrators can list users")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	return result, nil
}

type ResetPasswordCommand struct {
	ActorRole   authorization.UserRole
	UserID      uint
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	uc.logger.Infow("executing reset password use case", "user_id", cmd.UserID)

	if !cmd.ActorRole.IsAdministrator() {
		return errors.NewForbiddenError("only administrators can reset passwords")
	}
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("password must be at least 6 characters")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process credentials")
	}
	if err := u.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password reset", "user_id", cmd.UserID)
	return nil
}

type ToggleActiveCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole
	UserID    uint
}

type ToggleActiveResult struct {
	UserID uint
	Active bool
}

type ToggleActiveUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleActiveUseCase(userRepo user.Repository, logger logger.Interface) *ToggleActiveUseCase {
	return &ToggleActiveUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ToggleActiveUseCase) Execute(ctx context.Context, cmd ToggleActiveCommand) (*ToggleActiveResult, error) {
	uc.logger.Infow("executing toggle active use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.IsAdministrator() {
		return nil, errors.NewForbiddenError("only administrators can change account status")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if u.IsActive() && cmd.UserID == cmd.ActorID {
		return nil, errors.NewValidationError("you cannot deactivate your own account")
	}

	if u.IsActive() {
		u.Deactivate()
	} else {
		u.Activate()
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("account status toggled", "user_id", cmd.UserID, "active", u.IsActive())
	return &ToggleActiveResult{UserID: u.ID(), Active: u.IsActive()}, nil
}

type DeleteUserCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole
	UserID    uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.IsAdministrator() {
		return errors.NewForbiddenError("only administrators can delete users")
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}

type ListAssignableQuery struct {
	Sector string
}

// ListAssignableUseCase lists the technicians and administrators eligible
// to take tickets targeting a sector, the options for the assignee picker.
type ListAssignableUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListAssignableUseCase(userRepo user.Repository, logger logger.Interface) *ListAssignableUseCase {
	return &ListAssignableUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListAssignableUseCase) Execute(ctx context.Context, query ListAssignableQuery) ([]UserDTO, error) {
	sector, err := vo.NewSector(query.Sector)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	users, err := uc.userRepo.ListAssignable(ctx, sector)
	if err != nil {
		uc.logger.Errorw("failed to list assignable users", "sector", query.Sector, "error", err)
		return nil, err
	}

	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	return result, nil
}
