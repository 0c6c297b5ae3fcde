package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openslot/slotbook/internal/metrics"
	"github.com/openslot/slotbook/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SlotService struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewSlotService(db *gorm.DB, logger *zerolog.Logger) *SlotService {
	return &SlotService{db: db, logger: logger}
}

// Create validates the proposed interval against every existing slot of the
// category and persists it when no conflict exists. The category row is
// locked for the duration of the transaction so concurrent creations in the
// same category cannot slip past each other's overlap check; the composite
// unique index on (category_id, start_time, end_time) backstops exact
// duplicates.
func (s *SlotService) Create(ctx context.Context, categoryID uint, start, end time.Time) (*models.TimeSlot, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	slot := models.TimeSlot{CategoryID: categoryID, StartTime: start, EndTime: end}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := lockForUpdate(tx).First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("find category %d: %w", categoryID, err)
		}

		// Half-open overlap: [s1,e1) and [s2,e2) conflict iff s1 < e2 && s2 < e1.
		var conflicting []models.TimeSlot
		if err := tx.
			Where("category_id = ? AND start_time < ? AND end_time > ?", categoryID, end, start).
			Limit(1).Find(&conflicting).Error; err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if len(conflicting) > 0 {
			return ErrSlotConflict
		}

		if err := tx.Create(&slot).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotConflict
			}
			return fmt.Errorf("create time slot: %w", err)
		}

		slot.Category = category
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			metrics.IncSlotConflict()
		}
		return nil, err
	}

	metrics.IncSlotCreated()
	s.logger.Info().Uint("slot_id", slot.ID).Uint("category_id", categoryID).
		Time("start", start).Time("end", end).Msg("time slot created")
	return &slot, nil
}

// List returns slots whose start time falls on any calendar day between
// startDate and endDate inclusive, ordered by start time. The end boundary
// is advanced by one full day so a slot starting anytime on the end date is
// included. An empty categoryIDs set means all categories.
func (s *SlotService) List(ctx context.Context, startDate, endDate time.Time, categoryIDs []uint) ([]models.TimeSlot, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrInvalidArgument)
	}

	query := s.db.WithContext(ctx).
		Preload("Category").Preload("Booking").
		Where("start_time >= ? AND start_time < ?", startDate, endDate.AddDate(0, 0, 1))
	if len(categoryIDs) > 0 {
		query = query.Where("category_id IN ?", categoryIDs)
	}

	var slots []models.TimeSlot
	if err := query.Order("start_time").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	return slots, nil
}

// Delete removes a slot and its booking, if any. The booking is deleted
// explicitly so the cascade does not depend on database-level FK behavior.
func (s *SlotService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.TimeSlot
		if err := lockForUpdate(tx).First(&slot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("find time slot %d: %w", id, err)
		}
		if err := tx.Where("time_slot_id = ?", slot.ID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete booking of slot %d: %w", id, err)
		}
		if err := tx.Delete(&slot).Error; err != nil {
			return fmt.Errorf("delete time slot %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Uint("slot_id", id).Msg("time slot deleted")
	return nil
}
