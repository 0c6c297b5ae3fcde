package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openslot/slotbook/internal/helpers"
	"github.com/openslot/slotbook/internal/services"
)

type TimeSlotRequest struct {
	CategoryID uint      `json:"category_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

type TimeSlotHandler struct {
	service *services.SlotService
}

func NewTimeSlotHandler(service *services.SlotService) *TimeSlotHandler {
	return &TimeSlotHandler{service: service}
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	slot, err := h.service.Create(c.Request.Context(), req.CategoryID, req.StartTime, req.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *TimeSlotHandler) List(c *gin.Context) {
	startParam := c.Query("start_date")
	endParam := c.Query("end_date")
	if startParam == "" || endParam == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Start date and end date are required.")
		return
	}

	startDate, err := helpers.ParseDate(startParam)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start_date format. Use YYYY-MM-DD.")
		return
	}

	endDate, err := helpers.ParseDate(endParam)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end_date format. Use YYYY-MM-DD.")
		return
	}

	categoryIDs, err := helpers.ParseCategoryIDs(c.Query("category_ids"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "category_ids must contain integers.")
		return
	}

	slots, err := h.service.List(c.Request.Context(), startDate, endDate, categoryIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, err := helpers.ParseUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid time slot id.")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
