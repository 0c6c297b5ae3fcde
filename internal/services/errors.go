package services

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrBookingNotFound  = errors.New("no booking found for this time slot")
	ErrInvalidRange     = errors.New("end time must be after start time")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrSlotConflict     = errors.New("time slot overlaps an existing one")
	ErrAlreadyBooked    = errors.New("time slot is already booked")
	ErrNotOwner         = errors.New("booking belongs to another attendee")
)
