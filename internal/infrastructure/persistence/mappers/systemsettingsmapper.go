package mappers

import (
	"time"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/infrastructure/persistence/models"
)

// SystemSettingsMapper handles the conversion between the settings entity
// and its persistence model.
type SystemSettingsMapper interface {
	ToModel(s *setting.SystemSettings) *models.SystemSettingsModel
	ToDomain(model *models.SystemSettingsModel) (*setting.SystemSettings, error)
}

type SystemSettingsMapperImpl struct{}

func NewSystemSettingsMapper() SystemSettingsMapper {
	return &SystemSettingsMapperImpl{}
}

func (m *SystemSettingsMapperImpl) ToModel(s *setting.SystemSettings) *models.SystemSettingsModel {
	return &models.SystemSettingsModel{
		ID:            s.ID(),
		AutoCloseDays: s.AutoCloseDays(),
		LogoPath:      s.LogoPath(),
		UpdatedAt:     time.Now().UnixMilli(),
	}
}

func (m *SystemSettingsMapperImpl) ToDomain(model *models.SystemSettingsModel) (*setting.SystemSettings, error) {
	return setting.ReconstructSettings(model.ID, model.AutoCloseDays, model.LogoPath)
}
