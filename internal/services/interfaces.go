package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

// Actor is the authenticated identity performing an operation. Services
// use it to scope reads and guard record access; route-level role checks
// happen before the service is reached.
type Actor struct {
	UserID   uint
	Username string
	Role     models.UserRole
}

func (a Actor) IsAdmin() bool   { return a.Role == models.RoleAdmin }
func (a Actor) IsFaculty() bool { return a.Role == models.RoleFaculty }
func (a Actor) IsStudent() bool { return a.Role == models.RoleStudent }

// ===== USER / AUTH =====

type UserService interface {
	// Login verifies credentials and returns the account on success.
	// Unknown usernames and wrong passwords both yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, req *validator.LoginRequest) (*models.User, error)

	CreateUser(ctx context.Context, req *validator.UserCreateRequest) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// ===== STUDENT =====

type StudentService interface {
	List(ctx context.Context, actor Actor) ([]models.StudentSummary, error)
	Get(ctx context.Context, actor Actor, id uint) (*models.Student, error)
	Create(ctx context.Context, req *validator.StudentCreateRequest) (*models.Student, error)
	Update(ctx context.Context, id uint, req *validator.StudentUpdateRequest) (*models.Student, error)
	Delete(ctx context.Context, id uint) error
	Enrollments(ctx context.Context, actor Actor, studentID uint) ([]models.EnrollmentSummary, error)
}

// ===== FACULTY =====

type FacultyService interface {
	List(ctx context.Context) ([]models.FacultySummary, error)
	Get(ctx context.Context, id uint) (*models.Faculty, error)
	Create(ctx context.Context, req *validator.FacultyCreateRequest) (*models.Faculty, error)
	Update(ctx context.Context, id uint, req *validator.FacultyUpdateRequest) (*models.Faculty, error)
	Delete(ctx context.Context, id uint) error
}

// ===== COURSE =====

type CourseService interface {
	List(ctx context.Context) ([]*models.Course, error)
	Get(ctx context.Context, id uint) (*models.Course, error)
	Create(ctx context.Context, req *validator.CourseCreateRequest) (*models.Course, error)
	Update(ctx context.Context, id uint, req *validator.CourseUpdateRequest) (*models.Course, error)
	Delete(ctx context.Context, id uint) error
}

// ===== CLASS / ENROLLMENT =====

type ClassService interface {
	List(ctx context.Context, actor Actor) ([]models.ClassSummary, error)
	Get(ctx context.Context, actor Actor, id uint) (*models.Class, error)
	Create(ctx context.Context, req *validator.ClassCreateRequest) (*models.Class, error)
	Update(ctx context.Context, id uint, req *validator.ClassUpdateRequest) (*models.Class, error)
	Delete(ctx context.Context, id uint) error

	Enroll(ctx context.Context, req *validator.EnrollRequest) (*models.StudentClassEnrollment, error)
	Roster(ctx context.Context, actor Actor, classID uint) ([]models.EnrollmentSummary, error)
	RemoveEnrollment(ctx context.Context, enrollmentID uint) error
	UpdateEnrollmentStatus(ctx context.Context, enrollmentID uint, req *validator.EnrollmentStatusRequest) error
}

// ===== TIMETABLE =====

type TimetableService interface {
	ListSchedules(ctx context.Context) ([]*models.Schedule, error)
	GetSchedule(ctx context.Context, id uint) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, req *validator.ScheduleCreateRequest) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id uint, req *validator.ScheduleUpdateRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id uint) error

	// Grid assembles the weekly timetable visible to the actor: the
	// whole school for admins, taught classes for faculty, enrolled
	// classes for students.
	Grid(ctx context.Context, actor Actor) (*TimetableGrid, error)
}

// ===== DASHBOARD =====

type DashboardStats struct {
	Counts         repositories.DashboardCounts `json:"counts"`
	RecentStudents []models.StudentSummary      `json:"recent_students"`
	RecentFaculty  []models.FacultySummary      `json:"recent_faculty"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// ===== EXPORT =====

type ExportService interface {
	StudentsWorkbook(ctx context.Context, actor Actor) (*excelize.File, error)
	RosterWorkbook(ctx context.Context, actor Actor, classID uint) (*excelize.File, error)
	TimetableWorkbook(ctx context.Context, actor Actor) (*excelize.File, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	User() UserService
	Student() StudentService
	Faculty() FacultyService
	Course() CourseService
	Class() ClassService
	Timetable() TimetableService
	Dashboard() DashboardService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
