package models

import (
	"time"

	"gorm.io/datatypes"
)

// ===== LIST / PROJECTION DTOs =====
//
// Flat read models produced by repository joins. Plain data only; the
// presentation layer renders them as-is.

// StudentSummary is the student list row joined with the owning user.
type StudentSummary struct {
	StudentID      uint       `json:"student_id"`
	Username       string     `json:"username"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Gender         *string    `json:"gender"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	Address        *string    `json:"address"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	Program        *string    `json:"program"`
	CreatedAt      time.Time  `json:"created_at"`
}

// FacultySummary is the faculty list row joined with the owning user.
type FacultySummary struct {
	FacultyID  uint       `json:"faculty_id"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone"`
	Department *string    `json:"department"`
	HireDate   *time.Time `json:"hire_date"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ClassSummary is the class list row joined with course and instructor.
type ClassSummary struct {
	ClassID     uint   `json:"class_id"`
	ClassName   string `json:"class_name"`
	CourseName  string `json:"course_name"`
	FacultyName string `json:"faculty_name"`
	Semester    string `json:"semester"`
	Year        int    `json:"year"`
}

// EnrollmentSummary is one roster row for a class.
type EnrollmentSummary struct {
	EnrollmentID   uint             `json:"enrollment_id"`
	StudentName    string           `json:"student_name"`
	StudentEmail   string           `json:"student_email"`
	ClassName      string           `json:"class_name"`
	CourseName     string           `json:"course_name"`
	FacultyName    string           `json:"faculty_name"`
	EnrollmentDate time.Time        `json:"enrollment_date"`
	Status         EnrollmentStatus `json:"status"`
}

// TimetableEntry is one schedule row resolved through class, course and
// instructor; the grid builder consumes these.
type TimetableEntry struct {
	ScheduleID  uint           `json:"schedule_id"`
	ClassID     uint           `json:"class_id"`
	ClassName   string         `json:"class_name"`
	CourseCode  string         `json:"course_code"`
	CourseName  string         `json:"course_name"`
	FacultyName string         `json:"faculty_name"`
	DayOfWeek   string         `json:"day_of_week"`
	StartTime   datatypes.Time `json:"start_time"`
	EndTime     datatypes.Time `json:"end_time"`
	Room        string         `json:"room"`
	Semester    string         `json:"semester"`
	Year        int            `json:"year"`
}
