package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/utils"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type ClassHandler struct {
	BaseHandler
	service services.ClassService
}

func NewClassHandler(service services.ClassService, logger utils.Logger) *ClassHandler {
	return &ClassHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListClasses returns the classes visible to the caller.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	h.LogRequest(c, "Listing classes")

	actor, _ := currentActor(c)
	classes, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) GetClass(c *gin.Context) {
	h.LogRequest(c, "Getting class")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	actor, _ := currentActor(c)
	class, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) CreateClass(c *gin.Context) {
	h.LogRequest(c, "Creating class")

	var req validator.ClassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	class, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) UpdateClass(c *gin.Context) {
	h.LogRequest(c, "Updating class")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.ClassUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	class, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) DeleteClass(c *gin.Context) {
	h.LogRequest(c, "Deleting class")

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

// ===== ENROLLMENT ENDPOINTS =====

// EnrollStudent adds a student to a class.
func (h *ClassHandler) EnrollStudent(c *gin.Context) {
	h.LogRequest(c, "Enrolling student")

	classID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}
	req.ClassID = classID

	enrollment, err := h.service.Enroll(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// GetRoster lists the enrollments of a class.
func (h *ClassHandler) GetRoster(c *gin.Context) {
	h.LogRequest(c, "Listing class roster")

	classID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	actor, _ := currentActor(c)
	roster, err := h.service.Roster(c.Request.Context(), actor, classID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// RemoveEnrollment withdraws an enrollment entirely.
func (h *ClassHandler) RemoveEnrollment(c *gin.Context) {
	h.LogRequest(c, "Removing enrollment")

	enrollmentID, ok := h.parseIDParam(c, "enrollment_id")
	if !ok {
		return
	}

	if err := h.service.RemoveEnrollment(c.Request.Context(), enrollmentID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateEnrollmentStatus moves an enrollment between Active, Dropped
// and Completed.
func (h *ClassHandler) UpdateEnrollmentStatus(c *gin.Context) {
	h.LogRequest(c, "Updating enrollment status")

	enrollmentID, ok := h.parseIDParam(c, "enrollment_id")
	if !ok {
		return
	}

	var req validator.EnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	if err := h.service.UpdateEnrollmentStatus(c.Request.Context(), enrollmentID, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "enrollment status updated"})
}
