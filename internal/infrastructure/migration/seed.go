package migration

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/infrastructure/repository"
	"nagarsetu/internal/shared/logger"
)

type seedCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

// SeedCategories loads the category seed file and inserts any category
// that does not already exist. Existing categories are left untouched so
// the command stays safe to re-run.
func SeedCategories(ctx context.Context, db *gorm.DB, path string) error {
	log := logger.WithComponent("migration")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds seedFile
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	categoryRepo := repository.NewCategoryRepository(db)

	seeded := 0
	for _, seed := range seeds.Categories {
		exists, err := categoryRepo.ExistsByName(ctx, seed.Name)
		if err != nil {
			return fmt.Errorf("failed to check category %q: %w", seed.Name, err)
		}
		if exists {
			continue
		}

		cat, err := category.NewCategory(seed.Name, seed.Description, seed.Icon, seed.Color)
		if err != nil {
			return fmt.Errorf("invalid seed category %q: %w", seed.Name, err)
		}
		if err := categoryRepo.Save(ctx, cat); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
		}
		seeded++
	}

	log.Info("category seeding completed", "seeded", seeded, "total", len(seeds.Categories))
	return nil
}
