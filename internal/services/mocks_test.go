package services

import (
	"context"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

// mockRepository wires individually stubbed sub-repositories into the
// aggregate interface; unset sub-repositories panic on use so a test
// touching an unexpected store fails loudly.
type mockRepository struct {
	user       repositories.UserRepository
	student    repositories.StudentRepository
	enrollment repositories.EnrollmentRepository
	course     repositories.CourseRepository
}

func (m *mockRepository) User() repositories.UserRepository             { return m.user }
func (m *mockRepository) Student() repositories.StudentRepository       { return m.student }
func (m *mockRepository) Faculty() repositories.FacultyRepository       { return nil }
func (m *mockRepository) Course() repositories.CourseRepository         { return m.course }
func (m *mockRepository) Class() repositories.ClassRepository           { return nil }
func (m *mockRepository) Enrollment() repositories.EnrollmentRepository { return m.enrollment }
func (m *mockRepository) Schedule() repositories.ScheduleRepository     { return nil }
func (m *mockRepository) Dashboard() repositories.DashboardRepository   { return nil }
func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}
func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== USER =====

type mockUserRepository struct {
	usersByName map[string]*models.User
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range m.usersByName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := m.usersByName[username]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.usersByName[user.Username]; ok {
		return repositories.ErrDuplicate
	}
	user.ID = uint(len(m.usersByName) + 1)
	m.usersByName[user.Username] = user
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	for name, u := range m.usersByName {
		if u.ID == id {
			delete(m.usersByName, name)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.usersByName[username]
	return ok, nil
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var n int64
	for _, u := range m.usersByName {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ===== STUDENT =====

type mockStudentRepository struct {
	students  map[uint]*models.Student
	usernames map[string]bool
	nextID    uint
}

func newMockStudentRepository() *mockStudentRepository {
	return &mockStudentRepository{
		students:  make(map[uint]*models.Student),
		usernames: make(map[string]bool),
		nextID:    1,
	}
}

func (m *mockStudentRepository) GetAll(ctx context.Context) ([]models.StudentSummary, error) {
	out := make([]models.StudentSummary, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, models.StudentSummary{StudentID: s.ID, Email: s.Email})
	}
	return out, nil
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockStudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	return nil, repositories.ErrNotFound
}

func (m *mockStudentRepository) GetByUserID(ctx context.Context, userID uint) (*models.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockStudentRepository) Create(ctx context.Context, student *models.Student, user *models.User) error {
	if m.usernames[user.Username] {
		return repositories.ErrDuplicate
	}
	for _, s := range m.students {
		if s.Email == student.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = m.nextID
	student.ID = m.nextID
	student.UserID = user.ID
	m.nextID++
	m.usernames[user.Username] = true
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepository) Update(ctx context.Context, student *models.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, s := range m.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.usernames[username], nil
}

func (m *mockStudentRepository) GetByFacultyUserID(ctx context.Context, userID uint) ([]models.StudentSummary, error) {
	return []models.StudentSummary{}, nil
}

func (m *mockStudentRepository) IsInFacultyClasses(ctx context.Context, studentID, facultyUserID uint) (bool, error) {
	return false, nil
}

func (m *mockStudentRepository) Recent(ctx context.Context, limit int) ([]models.StudentSummary, error) {
	return []models.StudentSummary{}, nil
}

func (m *mockStudentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

// ===== ENROLLMENT =====

type mockEnrollmentRepository struct {
	enrollments map[uint]*models.StudentClassEnrollment
	nextID      uint
}

func newMockEnrollmentRepository() *mockEnrollmentRepository {
	return &mockEnrollmentRepository{
		enrollments: make(map[uint]*models.StudentClassEnrollment),
		nextID:      1,
	}
}

func (m *mockEnrollmentRepository) Enroll(ctx context.Context, enrollment *models.StudentClassEnrollment) error {
	enrollment.ID = m.nextID
	m.nextID++
	m.enrollments[enrollment.ID] = enrollment
	return nil
}

func (m *mockEnrollmentRepository) Remove(ctx context.Context, enrollmentID uint) error {
	if _, ok := m.enrollments[enrollmentID]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.enrollments, enrollmentID)
	return nil
}

func (m *mockEnrollmentRepository) GetByID(ctx context.Context, enrollmentID uint) (*models.StudentClassEnrollment, error) {
	if e, ok := m.enrollments[enrollmentID]; ok {
		return e, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockEnrollmentRepository) GetByClass(ctx context.Context, classID uint) ([]models.EnrollmentSummary, error) {
	return []models.EnrollmentSummary{}, nil
}

func (m *mockEnrollmentRepository) GetByStudent(ctx context.Context, studentID uint) ([]models.EnrollmentSummary, error) {
	return []models.EnrollmentSummary{}, nil
}

func (m *mockEnrollmentRepository) UpdateStatus(ctx context.Context, enrollmentID uint, status models.EnrollmentStatus) error {
	e, ok := m.enrollments[enrollmentID]
	if !ok {
		return repositories.ErrNotFound
	}
	e.Status = status
	return nil
}

func (m *mockEnrollmentRepository) IsEnrolled(ctx context.Context, studentID, classID uint) (bool, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.ClassID == classID && e.Status == models.EnrollmentActive {
			return true, nil
		}
	}
	return false, nil
}
