package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/utils"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type TimetableHandler struct {
	BaseHandler
	service services.TimetableService
}

func NewTimetableHandler(service services.TimetableService, logger utils.Logger) *TimetableHandler {
	return &TimetableHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetTimetable returns the caller's weekly grid.
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	h.LogRequest(c, "Building timetable grid")

	actor, _ := currentActor(c)
	grid, err := h.service.Grid(c.Request.Context(), actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, grid)
}

func (h *TimetableHandler) ListSchedules(c *gin.Context) {
	h.LogRequest(c, "Listing schedules")

	schedules, err := h.service.ListSchedules(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (h *TimetableHandler) GetSchedule(c *gin.Context) {
	h.LogRequest(c, "Getting schedule")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	schedule, err := h.service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (h *TimetableHandler) CreateSchedule(c *gin.Context) {
	h.LogRequest(c, "Creating schedule")

	var req validator.ScheduleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	schedule, err := h.service.CreateSchedule(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *TimetableHandler) UpdateSchedule(c *gin.Context) {
	h.LogRequest(c, "Updating schedule")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	schedule, err := h.service.UpdateSchedule(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (h *TimetableHandler) DeleteSchedule(c *gin.Context) {
	h.LogRequest(c, "Deleting schedule")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
