package models

type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description *string    `gorm:"size:255" json:"description,omitempty"`
	TimeSlots   []TimeSlot `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
