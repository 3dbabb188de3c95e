package repositories

import (
	"context"

	"github.com/SAP-F-2025/sims-service/internal/models"
)

// ===== USER =====

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	CountByRole(ctx context.Context, role models.UserRole) (int64, error)
}

// ===== STUDENT =====

// StudentRepository owns the students table and the 1:1 owning user row.
// Create and Delete act on student and user together, atomically.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.StudentSummary, error)
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Student, error)

	// Create inserts the user row, assigns the generated id as the
	// student's foreign key and inserts the student row, all in one
	// transaction. The enrollment date is stamped at insert time. On any
	// failure both inserts roll back and the error is returned.
	Create(ctx context.Context, student *models.Student, user *models.User) error

	Update(ctx context.Context, student *models.Student) error

	// Delete removes the student row and its owning user row together.
	Delete(ctx context.Context, id uint) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Role-scoped variants. An unresolvable faculty identity yields an
	// empty result, not an error.
	GetByFacultyUserID(ctx context.Context, userID uint) ([]models.StudentSummary, error)
	IsInFacultyClasses(ctx context.Context, studentID, facultyUserID uint) (bool, error)

	// Recent lists the newest students by enrollment date.
	Recent(ctx context.Context, limit int) ([]models.StudentSummary, error)
	Count(ctx context.Context) (int64, error)
}

// ===== FACULTY =====

type FacultyRepository interface {
	GetAll(ctx context.Context) ([]models.FacultySummary, error)
	GetByID(ctx context.Context, id uint) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Faculty, error)

	// Create inserts user and faculty rows in one transaction, stamping
	// the hire date at insert time; rollback on any failure.
	Create(ctx context.Context, faculty *models.Faculty, user *models.User) error

	Update(ctx context.Context, faculty *models.Faculty) error

	// Delete removes the faculty row and its owning user row together.
	Delete(ctx context.Context, id uint) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Recent(ctx context.Context, limit int) ([]models.FacultySummary, error)
	Count(ctx context.Context) (int64, error)
}

// ===== COURSE =====

type CourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uint) error

	// CodeExists checks course-code uniqueness; excludeID skips the
	// course's own row on edit (0 means no exclusion).
	CodeExists(ctx context.Context, code string, excludeID uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ===== CLASS =====

// ClassRepository does not pre-validate course/faculty references;
// writes with dangling ids fail with ErrInvalidReference from the store.
type ClassRepository interface {
	GetAll(ctx context.Context) ([]models.ClassSummary, error)
	GetByID(ctx context.Context, id uint) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)

	// Role-scoped variants; unresolvable identity yields an empty result.
	GetByStudentUserID(ctx context.Context, userID uint) ([]models.ClassSummary, error)
	GetByFacultyUserID(ctx context.Context, userID uint) ([]models.ClassSummary, error)
	IsStudentEnrolledByUserID(ctx context.Context, userID, classID uint) (bool, error)
	IsFacultyAssignedByUserID(ctx context.Context, userID, classID uint) (bool, error)
}

// ===== ENROLLMENT =====

type EnrollmentRepository interface {
	Enroll(ctx context.Context, enrollment *models.StudentClassEnrollment) error
	Remove(ctx context.Context, enrollmentID uint) error
	GetByID(ctx context.Context, enrollmentID uint) (*models.StudentClassEnrollment, error)
	GetByClass(ctx context.Context, classID uint) ([]models.EnrollmentSummary, error)
	GetByStudent(ctx context.Context, studentID uint) ([]models.EnrollmentSummary, error)
	UpdateStatus(ctx context.Context, enrollmentID uint, status models.EnrollmentStatus) error

	// IsEnrolled considers Active enrollments only.
	IsEnrolled(ctx context.Context, studentID, classID uint) (bool, error)
}

// ===== SCHEDULE =====

type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*models.Schedule, error)
	GetByID(ctx context.Context, id uint) (*models.Schedule, error)
	GetByClassID(ctx context.Context, classID uint) ([]*models.Schedule, error)
	GetByDayOfWeek(ctx context.Context, day string) ([]*models.Schedule, error)
	Create(ctx context.Context, schedule *models.Schedule) error
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id uint) error

	// Timetable projections, resolved through class → course/faculty.
	GetTimetable(ctx context.Context) ([]models.TimetableEntry, error)
	GetTimetableByStudentUserID(ctx context.Context, userID uint) ([]models.TimetableEntry, error)
	GetTimetableByFacultyUserID(ctx context.Context, userID uint) ([]models.TimetableEntry, error)
}

// ===== DASHBOARD =====

type DashboardCounts struct {
	Admins   int64 `json:"admins"`
	Students int64 `json:"students"`
	Faculty  int64 `json:"faculty"`
	Courses  int64 `json:"courses"`
	Classes  int64 `json:"classes"`
}

type DashboardRepository interface {
	GetCounts(ctx context.Context) (*DashboardCounts, error)
	RecentStudents(ctx context.Context, limit int) ([]models.StudentSummary, error)
	RecentFaculty(ctx context.Context, limit int) ([]models.FacultySummary, error)
}
