package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

// GooseStrategy runs the embedded versioned SQL scripts. The scripts stick
// to the SQL subset both sqlite and mysql accept.
type GooseStrategy struct {
	driver string
}

func NewGooseStrategy(driver string) Strategy {
	return &GooseStrategy{driver: driver}
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embeddedScripts)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.gooseDialect()); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) gooseDialect() string {
	if s.driver == "mysql" {
		return "mysql"
	}
	return "sqlite3"
}
