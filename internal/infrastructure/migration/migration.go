// Package migration brings the database schema up to date. Development
// environments use gorm AutoMigrate against the persistence models;
// everything else runs the versioned goose scripts embedded in the binary.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment, driver string, log logger.Interface) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "development", "":
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy(driver)
	}

	return &Manager{strategy: strategy, logger: log}
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{strategy: strategy, logger: log}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}
