package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/sims-service/internal/models"
)

type exportService struct {
	students  StudentService
	classes   ClassService
	timetable TimetableService
	logger    *slog.Logger
}

func NewExportService(students StudentService, classes ClassService, timetable TimetableService, logger *slog.Logger) ExportService {
	return &exportService{
		students:  students,
		classes:   classes,
		timetable: timetable,
		logger:    logger,
	}
}

// StudentsWorkbook renders the actor-visible student list as a
// spreadsheet.
func (s *exportService) StudentsWorkbook(ctx context.Context, actor Actor) (*excelize.File, error) {
	students, err := s.students.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Students"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Username", "First Name", "Last Name", "Email", "Phone", "Program", "Enrollment Date"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, st := range students {
		row := i + 2
		values := []interface{}{
			st.StudentID, st.Username, st.FirstName, st.LastName, st.Email,
			deref(st.Phone), deref(st.Program), formatDate(st.EnrollmentDate),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Students workbook generated", "rows", len(students))
	return f, nil
}

// RosterWorkbook renders one class roster; class access rules apply to
// the actor.
func (s *exportService) RosterWorkbook(ctx context.Context, actor Actor, classID uint) (*excelize.File, error) {
	roster, err := s.classes.Roster(ctx, actor, classID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Roster"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Enrollment ID", "Student", "Email", "Class", "Course", "Instructor", "Enrolled On", "Status"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, e := range roster {
		row := i + 2
		values := []interface{}{
			e.EnrollmentID, e.StudentName, e.StudentEmail, e.ClassName,
			e.CourseName, e.FacultyName, e.EnrollmentDate.Format("2006-01-02"), string(e.Status),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Roster workbook generated", "class_id", classID, "rows", len(roster))
	return f, nil
}

// TimetableWorkbook renders the actor's weekly grid, slot rows by day
// columns.
func (s *exportService) TimetableWorkbook(ctx context.Context, actor Actor) (*excelize.File, error) {
	grid, err := s.timetable.Grid(ctx, actor)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Timetable"
	f.SetSheetName("Sheet1", sheet)

	headers := append([]string{"Time Slot"}, grid.Days...)
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for slotIdx, slot := range grid.Slots {
		row := slotIdx + 2
		values := make([]interface{}, 0, len(grid.Days)+1)
		values = append(values, slot.Label)
		for dayIdx := range grid.Days {
			values = append(values, formatCell(grid.Cells[slotIdx][dayIdx]))
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Timetable workbook generated")
	return f, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	return writeRow(f, sheet, 1, values)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func formatCell(entry *models.TimetableEntry) string {
	if entry == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s) - %s, room %s", entry.ClassName, entry.CourseCode, entry.FacultyName, entry.Room)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
