package models

import "time"

type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TimeSlotID uint      `gorm:"not null;uniqueIndex" json:"time_slot_id"`
	UserName   string    `gorm:"size:120;not null" json:"user_name"`
	UserEmail  string    `gorm:"size:160;not null;index" json:"user_email"`
	BookedAt   time.Time `gorm:"not null" json:"booked_at"`
}
