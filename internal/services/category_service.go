package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openslot/slotbook/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CategoryService struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewCategoryService(db *gorm.DB, logger *zerolog.Logger) *CategoryService {
	return &CategoryService{db: db, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}
