package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/utils"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type FacultyHandler struct {
	BaseHandler
	service services.FacultyService
}

func NewFacultyHandler(service services.FacultyService, logger utils.Logger) *FacultyHandler {
	return &FacultyHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *FacultyHandler) ListFaculty(c *gin.Context) {
	h.LogRequest(c, "Listing faculty")

	faculty, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, faculty)
}

func (h *FacultyHandler) GetFaculty(c *gin.Context) {
	h.LogRequest(c, "Getting faculty member")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	faculty, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, faculty)
}

func (h *FacultyHandler) CreateFaculty(c *gin.Context) {
	h.LogRequest(c, "Creating faculty member")

	var req validator.FacultyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	faculty, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, faculty)
}

func (h *FacultyHandler) UpdateFaculty(c *gin.Context) {
	h.LogRequest(c, "Updating faculty member")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.FacultyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	faculty, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, faculty)
}

func (h *FacultyHandler) DeleteFaculty(c *gin.Context) {
	h.LogRequest(c, "Deleting faculty member")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
