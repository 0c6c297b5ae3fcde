package config

import (
	"fmt"
	"os"

	"github.com/openslot/slotbook/internal/models"
	"gopkg.in/yaml.v3"
)

// SeedCategory is a single category in the seed catalog file.
type SeedCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// SeedCatalog is the root of categories.yaml.
type SeedCatalog struct {
	Categories []SeedCategory `yaml:"categories"`
}

// LoadSeedCatalog loads and validates the seed catalog from a YAML file.
func LoadSeedCatalog(path string) (*SeedCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}

	var catalog SeedCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validate seed catalog: %w", err)
	}

	return &catalog, nil
}

// Validate checks the catalog for errors.
func (s *SeedCatalog) Validate() error {
	if len(s.Categories) == 0 {
		return fmt.Errorf("no categories defined")
	}

	names := make(map[string]bool)
	for i, cat := range s.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category[%d]: name is required", i)
		}
		if len(cat.Name) > 100 {
			return fmt.Errorf("category[%d]: name exceeds 100 characters", i)
		}
		if names[cat.Name] {
			return fmt.Errorf("category[%d]: duplicate name %q", i, cat.Name)
		}
		names[cat.Name] = true

		if len(cat.Description) > 255 {
			return fmt.Errorf("category[%d]: description exceeds 255 characters", i)
		}
	}
	return nil
}

func (s *SeedCatalog) categories() []models.Category {
	out := make([]models.Category, 0, len(s.Categories))
	for _, cat := range s.Categories {
		category := models.Category{Name: cat.Name}
		if cat.Description != "" {
			desc := cat.Description
			category.Description = &desc
		}
		out = append(out, category)
	}
	return out
}
