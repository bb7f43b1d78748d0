package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// SystemSettingsRepository stores the singleton settings row.
type SystemSettingsRepository struct {
	db     *gorm.DB
	mapper mappers.SystemSettingsMapper
}

func NewSystemSettingsRepository(gormDB *gorm.DB) *SystemSettingsRepository {
	return &SystemSettingsRepository{
		db:     gormDB,
		mapper: mappers.NewSystemSettingsMapper(),
	}
}

func (r *SystemSettingsRepository) Find(ctx context.Context) (*setting.SystemSettings, error) {
	var model models.SystemSettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("settings not found")
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SystemSettingsRepository) Save(ctx context.Context, s *setting.SystemSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SystemSettingsRepository) Update(ctx context.Context, s *setting.SystemSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so the logo path can be cleared back to empty.
	result := tx.
		Model(&models.SystemSettingsModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update settings: %w", result.Error)
	}

	return nil
}
