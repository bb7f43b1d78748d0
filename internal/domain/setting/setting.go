package setting

import "fmt"

const DefaultAutoCloseDays = 7

// SystemSettings is the single row of installation-wide configuration.
type SystemSettings struct {
	id            uint
	autoCloseDays int
	logoPath      string
}

// NewDefaultSettings returns the settings row created lazily on first read.
func NewDefaultSettings() *SystemSettings {
	return &SystemSettings{autoCloseDays: DefaultAutoCloseDays}
}

func ReconstructSettings(id uint, autoCloseDays int, logoPath string) (*SystemSettings, error) {
	if id == 0 {
		return nil, fmt.Errorf("settings ID cannot be zero")
	}
	return &SystemSettings{id: id, autoCloseDays: autoCloseDays, logoPath: logoPath}, nil
}

func (s *SystemSettings) ID() uint           { return s.id }
func (s *SystemSettings) AutoCloseDays() int { return s.autoCloseDays }
func (s *SystemSettings) LogoPath() string   { return s.logoPath }

func (s *SystemSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *SystemSettings) ChangeAutoCloseDays(days int) error {
	if days < 1 {
		return fmt.Errorf("auto-close days must be at least 1")
	}
	s.autoCloseDays = days
	return nil
}

func (s *SystemSettings) ChangeLogo(path string) {
	s.logoPath = path
}
