package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	BaseHandler
	service services.ExportService
}

func NewExportHandler(service services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ExportStudents streams the student list as a spreadsheet.
func (h *ExportHandler) ExportStudents(c *gin.Context) {
	h.LogRequest(c, "Exporting students")

	actor, _ := currentActor(c)
	workbook, err := h.service.StudentsWorkbook(c.Request.Context(), actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.streamWorkbook(c, workbook, "students.xlsx")
}

// ExportRoster streams one class roster as a spreadsheet.
func (h *ExportHandler) ExportRoster(c *gin.Context) {
	h.LogRequest(c, "Exporting class roster")

	classID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	actor, _ := currentActor(c)
	workbook, err := h.service.RosterWorkbook(c.Request.Context(), actor, classID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.streamWorkbook(c, workbook, fmt.Sprintf("class-%d-roster.xlsx", classID))
}

// ExportTimetable streams the caller's weekly grid as a spreadsheet.
func (h *ExportHandler) ExportTimetable(c *gin.Context) {
	h.LogRequest(c, "Exporting timetable")

	actor, _ := currentActor(c)
	workbook, err := h.service.TimetableWorkbook(c.Request.Context(), actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.streamWorkbook(c, workbook, "timetable.xlsx")
}

func (h *ExportHandler) streamWorkbook(c *gin.Context, workbook *excelize.File, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)

	if err := workbook.Write(c.Writer); err != nil {
		h.LogError(c, "Failed to stream workbook", err)
	}
	if err := workbook.Close(); err != nil {
		h.LogError(c, "Failed to close workbook", err)
	}
}
