package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openslot/slotbook/internal/helpers"
	"github.com/openslot/slotbook/internal/services"
)

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
	case errors.Is(err, services.ErrSlotNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Time slot not found.")
	case errors.Is(err, services.ErrBookingNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "No booking found for this time slot.")
	case errors.Is(err, services.ErrInvalidRange):
		helpers.RespondWithError(c, http.StatusBadRequest, "End time must be after the start time.")
	case errors.Is(err, services.ErrInvalidArgument):
		helpers.RespondWithError(c, http.StatusBadRequest, "end_date must not be earlier than start_date.")
	case errors.Is(err, services.ErrSlotConflict):
		helpers.RespondWithError(c, http.StatusConflict, "A timeslot already exists for the selected time range.")
	case errors.Is(err, services.ErrAlreadyBooked):
		helpers.RespondWithError(c, http.StatusConflict, "This time slot is already booked.")
	case errors.Is(err, services.ErrNotOwner):
		helpers.RespondWithError(c, http.StatusForbidden, "Only the original attendee can cancel this booking.")
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
