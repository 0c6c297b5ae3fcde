package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openslot/slotbook/internal/metrics"
	"github.com/openslot/slotbook/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type BookingService struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewBookingService(db *gorm.DB, logger *zerolog.Logger) *BookingService {
	return &BookingService{db: db, logger: logger}
}

// Book transitions a slot from Open to Booked. Re-booking by the attendee
// who already holds the slot returns the existing booking unchanged, so
// client retries are safe; any other attendee gets ErrAlreadyBooked. A
// concurrent loser of the insert race is caught by the unique index on
// time_slot_id, rolled back to a savepoint, and resolved against the row
// the winner wrote.
func (s *BookingService) Book(ctx context.Context, slotID uint, name, email string) (*models.Booking, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	var booking models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.TimeSlot
		if err := lockForUpdate(tx).First(&slot, slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("find time slot %d: %w", slotID, err)
		}

		var existing models.Booking
		err := tx.Where("time_slot_id = ?", slot.ID).First(&existing).Error
		switch {
		case err == nil:
			if existing.UserEmail == email {
				booking = existing
				return nil
			}
			return ErrAlreadyBooked
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("find booking of slot %d: %w", slotID, err)
		}

		candidate := models.Booking{
			TimeSlotID: slot.ID,
			UserName:   name,
			UserEmail:  email,
			BookedAt:   time.Now().UTC(),
		}
		if err := tx.SavePoint("book").Error; err != nil {
			return fmt.Errorf("savepoint: %w", err)
		}
		if err := tx.Create(&candidate).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("create booking: %w", err)
			}
			if err := tx.RollbackTo("book").Error; err != nil {
				return fmt.Errorf("rollback to savepoint: %w", err)
			}
			var winner models.Booking
			if err := tx.Where("time_slot_id = ?", slot.ID).First(&winner).Error; err != nil {
				return fmt.Errorf("re-read booking of slot %d: %w", slotID, err)
			}
			if winner.UserEmail == email {
				booking = winner
				return nil
			}
			return ErrAlreadyBooked
		}

		booking = candidate
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyBooked) {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().Uint("slot_id", slotID).Uint("booking_id", booking.ID).Msg("slot booked")
	return &booking, nil
}

// Cancel deletes the booking and returns the slot to Open. Only the
// attendee whose normalized email matches the stored one may cancel.
func (s *BookingService) Cancel(ctx context.Context, slotID uint, email string) error {
	email = NormalizeEmail(email)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.TimeSlot
		if err := lockForUpdate(tx).First(&slot, slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("find time slot %d: %w", slotID, err)
		}

		var booking models.Booking
		if err := tx.Where("time_slot_id = ?", slot.ID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("find booking of slot %d: %w", slotID, err)
		}

		if booking.UserEmail != email {
			return ErrNotOwner
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("delete booking %d: %w", booking.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.IncBookingCancelled()
	s.logger.Info().Uint("slot_id", slotID).Msg("booking cancelled")
	return nil
}
