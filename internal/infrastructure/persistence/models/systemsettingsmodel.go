package models

// SystemSettingsModel is the persistence model for the singleton settings row.
type SystemSettingsModel struct {
	ID            uint   `gorm:"primarykey"`
	AutoCloseDays int    `gorm:"not null;default:7"`
	LogoPath      string `gorm:"size:255"`
	UpdatedAt     int64  `gorm:"not null"`
}

func (SystemSettingsModel) TableName() string {
	return "system_settings"
}
