package models

import "time"

type TimeSlot struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID uint      `gorm:"not null;uniqueIndex:uq_slot_category_time" json:"category_id"`
	StartTime  time.Time `gorm:"not null;uniqueIndex:uq_slot_category_time" json:"start_time"`
	EndTime    time.Time `gorm:"not null;uniqueIndex:uq_slot_category_time" json:"end_time"`
	Category   Category  `json:"category"`
	Booking    *Booking  `gorm:"constraint:OnDelete:CASCADE" json:"booking,omitempty"`
}
