package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openslot/slotbook/internal/helpers"
	"github.com/openslot/slotbook/internal/services"
)

type BookingRequest struct {
	UserName  string `json:"user_name" binding:"required,max=120"`
	UserEmail string `json:"user_email" binding:"required,min=3,max=160"`
}

type CancelRequest struct {
	UserEmail string `json:"user_email" binding:"required,min=3,max=160"`
}

type BookingHandler struct {
	service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Book(c *gin.Context) {
	slotID, err := helpers.ParseUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid time slot id.")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	booking, err := h.service.Book(c.Request.Context(), slotID, req.UserName, req.UserEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	slotID, err := helpers.ParseUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid time slot id.")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), slotID, req.UserEmail); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
