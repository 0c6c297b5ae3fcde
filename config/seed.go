package config

import (
	"fmt"
	"os"

	"github.com/openslot/slotbook/internal/models"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.TimeSlot{}, &models.Booking{})
}

// SeedCategories populates the initial categories exactly once: it is a
// no-op whenever any category already exists. The catalog file is used when
// present; otherwise the built-in defaults apply.
func SeedCategories(db *gorm.DB, catalogPath string) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := defaultCategories()
	if catalogPath != "" {
		if _, err := os.Stat(catalogPath); err == nil {
			catalog, err := LoadSeedCatalog(catalogPath)
			if err != nil {
				return err
			}
			categories = catalog.categories()
		}
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

func defaultCategories() []models.Category {
	return []models.Category{
		{Name: "Cat 1"},
		{Name: "Cat 2"},
		{Name: "Cat 3"},
	}
}
