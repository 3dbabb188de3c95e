package validator

import (
	"time"
)

// ===== AUTH =====

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,role"`
}

// ===== STUDENT =====

type StudentCreateRequest struct {
	Username    string     `json:"username" validate:"required,min=3,max=100"`
	Password    string     `json:"password" validate:"required,min=8,max=72"`
	FirstName   string     `json:"first_name" validate:"required,max=50"`
	LastName    string     `json:"last_name" validate:"required,max=50"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender" validate:"omitempty,gender"`
	Email       string     `json:"email" validate:"required,email,max=100"`
	Phone       *string    `json:"phone" validate:"omitempty,max=20"`
	Address     *string    `json:"address" validate:"omitempty,max=255"`
	Program     *string    `json:"program" validate:"omitempty,max=100"`
}

type StudentUpdateRequest struct {
	FirstName   string     `json:"first_name" validate:"required,max=50"`
	LastName    string     `json:"last_name" validate:"required,max=50"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender" validate:"omitempty,gender"`
	Email       string     `json:"email" validate:"required,email,max=100"`
	Phone       *string    `json:"phone" validate:"omitempty,max=20"`
	Address     *string    `json:"address" validate:"omitempty,max=255"`
	Program     *string    `json:"program" validate:"omitempty,max=100"`
}

// ===== FACULTY =====

type FacultyCreateRequest struct {
	Username   string     `json:"username" validate:"required,min=3,max=100"`
	Password   string     `json:"password" validate:"required,min=8,max=72"`
	FirstName  string     `json:"first_name" validate:"required,max=50"`
	LastName   string     `json:"last_name" validate:"required,max=50"`
	Email      string     `json:"email" validate:"required,email,max=100"`
	Phone      *string    `json:"phone" validate:"omitempty,max=20"`
	Department *string    `json:"department" validate:"omitempty,max=100"`
	HireDate   *time.Time `json:"hire_date"`
}

type FacultyUpdateRequest struct {
	FirstName  string  `json:"first_name" validate:"required,max=50"`
	LastName   string  `json:"last_name" validate:"required,max=50"`
	Email      string  `json:"email" validate:"required,email,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// ===== COURSE =====

type CourseCreateRequest struct {
	CourseCode  string  `json:"course_code" validate:"required,max=20"`
	CourseName  string  `json:"course_name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Credits     int     `json:"credits" validate:"required,min=1,max=30"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
}

type CourseUpdateRequest struct {
	CourseCode  string  `json:"course_code" validate:"required,max=20"`
	CourseName  string  `json:"course_name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Credits     int     `json:"credits" validate:"required,min=1,max=30"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
}

// ===== CLASS =====

type ClassCreateRequest struct {
	ClassName string `json:"class_name" validate:"required,max=100"`
	CourseID  uint   `json:"course_id" validate:"required"`
	FacultyID uint   `json:"faculty_id" validate:"required"`
	Semester  string `json:"semester" validate:"required,semester"`
	Year      int    `json:"year" validate:"required,min=2000,max=2100"`
}

type ClassUpdateRequest struct {
	ClassName string `json:"class_name" validate:"required,max=100"`
	CourseID  uint   `json:"course_id" validate:"required"`
	FacultyID uint   `json:"faculty_id" validate:"required"`
	Semester  string `json:"semester" validate:"required,semester"`
	Year      int    `json:"year" validate:"required,min=2000,max=2100"`
}

// ===== ENROLLMENT =====

type EnrollRequest struct {
	StudentID uint `json:"student_id" validate:"required"`
	ClassID   uint `json:"class_id" validate:"required"`
}

type EnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Dropped Completed"`
}

// ===== SCHEDULE =====

// Times are HH:MM strings on the wire; start must precede end.
type ScheduleCreateRequest struct {
	ClassID   uint   `json:"class_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,day_of_week"`
	StartTime string `json:"start_time" validate:"required,time_hhmm"`
	EndTime   string `json:"end_time" validate:"required,time_hhmm"`
	Room      string `json:"room" validate:"required,max=50"`
}

type ScheduleUpdateRequest struct {
	ClassID   uint   `json:"class_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,day_of_week"`
	StartTime string `json:"start_time" validate:"required,time_hhmm"`
	EndTime   string `json:"end_time" validate:"required,time_hhmm"`
	Room      string `json:"room" validate:"required,max=50"`
}
