// Package migration applies the reference schema for development and test
// environments. Production schema changes are rolled out through the same
// versioned scripts, run by the migrate subcommand.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"nagarsetu/internal/infrastructure/persistence/models"
	"nagarsetu/internal/shared/constants"
	"nagarsetu/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Up applies all pending versioned SQL migrations through goose.
func Up(db *gorm.DB, dialect string) error {
	log := logger.WithComponent("migration")

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("database migrations applied", "dialect", dialect)
	return nil
}

// Down rolls back the given number of migrations.
func Down(db *gorm.DB, dialect string, steps int) error {
	log := logger.WithComponent("migration")

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, "scripts"); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	}

	log.Info("database migrations rolled back", "steps", steps)
	return nil
}

// Status prints the applied and pending migrations.
func Status(db *gorm.DB, dialect string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	return goose.Status(sqlDB, "scripts")
}

// Version returns the currently applied migration version.
func Version(db *gorm.DB, dialect string) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("failed to set migration dialect: %w", err)
	}

	return goose.GetDBVersion(sqlDB)
}

// AutoMigrate syncs the schema from model definitions. Development only.
func AutoMigrate(db *gorm.DB) error {
	log := logger.WithComponent("migration")

	if err := db.AutoMigrate(
		&models.CategoryModel{},
		&models.UserModel{},
		&models.IssueModel{},
		&models.IssueImageModel{},
		&models.CommentModel{},
		&models.StatusHistoryModel{},
		&models.NotificationModel{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	log.Info("auto migration completed")
	return nil
}

// Run picks the strategy for the given environment: versioned SQL scripts
// everywhere except development, which uses AutoMigrate for fast iteration.
func Run(db *gorm.DB, environment, dialect string) error {
	if strings.ToLower(environment) == constants.EnvDevelopment {
		return AutoMigrate(db)
	}
	return Up(db, dialect)
}
