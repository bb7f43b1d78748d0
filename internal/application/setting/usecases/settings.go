package usecases

import (
	"context"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SettingsDTO struct {
	AutoCloseDays int    `json:"auto_close_days"`
	LogoPath      string `json:"logo_path,omitempty"`
}

type GetSettingsExecutor interface {
	Execute(ctx context.Context) (*SettingsDTO, error)
}

type UpdateSettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateSettingsCommand) (*SettingsDTO, error)
}

// GetSettingsUseCase reads the singleton settings row, creating it with
// defaults the first time anything asks for it.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*SettingsDTO, error) {
	s, err := uc.settingRepo.Find(ctx)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		s = setting.NewDefaultSettings()
		if err := uc.settingRepo.Save(ctx, s); err != nil {
			uc.logger.Errorw("failed to create default settings", "error", err)
			return nil, err
		}
		uc.logger.Infow("default settings created")
	}

	return &SettingsDTO{AutoCloseDays: s.AutoCloseDays(), LogoPath: s.LogoPath()}, nil
}

type UpdateSettingsCommand struct {
	ActorRole authorization.UserRole

	AutoCloseDays *int
	LogoPath      *string
}

type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*SettingsDTO, error) {
	uc.logger.Infow("executing update settings use case")

	if !cmd.ActorRole.IsAdministrator() {
		return nil, errors.NewForbiddenError("only administrators can change settings")
	}

	s, err := uc.settingRepo.Find(ctx)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		s = setting.NewDefaultSettings()
		if err := uc.settingRepo.Save(ctx, s); err != nil {
			return nil, err
		}
	}

	if cmd.AutoCloseDays != nil {
		if err := s.ChangeAutoCloseDays(*cmd.AutoCloseDays); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.LogoPath != nil {
		s.ChangeLogo(*cmd.LogoPath)
	}

	if err := uc.settingRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update settings", "error", err)
		return nil, err
	}

	return &SettingsDTO{AutoCloseDays: s.AutoCloseDays(), LogoPath: s.LogoPath()}, nil
}
