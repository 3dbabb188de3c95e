package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/sims-service/internal/events"
	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

func TestClassService_Enroll(t *testing.T) {
	enrollRepo := newMockEnrollmentRepository()
	repo := &mockRepository{enrollment: enrollRepo}
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewClassService(repo, nil, testLogger(), validator.New(), publisher)
	ctx := context.Background()

	enrollment, err := svc.Enroll(ctx, &validator.EnrollRequest{StudentID: 1, ClassID: 2})
	if err != nil {
		t.Fatalf("Expected enrollment, got %v", err)
	}
	if enrollment.Status != models.EnrollmentActive {
		t.Errorf("New enrollment status = %s, want Active", enrollment.Status)
	}
	if enrollment.EnrollmentDate.IsZero() {
		t.Error("Enrollment date not stamped")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.StudentEnrolled {
		t.Errorf("Expected one %s event, got %v", events.StudentEnrolled, published)
	}
}

func TestClassService_Enroll_RejectsDuplicate(t *testing.T) {
	enrollRepo := newMockEnrollmentRepository()
	repo := &mockRepository{enrollment: enrollRepo}
	svc := NewClassService(repo, nil, testLogger(), validator.New(), events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, &validator.EnrollRequest{StudentID: 1, ClassID: 2}); err != nil {
		t.Fatalf("First enrollment failed: %v", err)
	}

	_, err := svc.Enroll(ctx, &validator.EnrollRequest{StudentID: 1, ClassID: 2})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Duplicate enrollment error = %v, want ErrAlreadyExists", err)
	}
}

func TestClassService_Enroll_AllowsReenrollAfterDrop(t *testing.T) {
	enrollRepo := newMockEnrollmentRepository()
	repo := &mockRepository{enrollment: enrollRepo}
	svc := NewClassService(repo, nil, testLogger(), validator.New(), events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	first, err := svc.Enroll(ctx, &validator.EnrollRequest{StudentID: 1, ClassID: 2})
	if err != nil {
		t.Fatalf("First enrollment failed: %v", err)
	}

	if err := svc.UpdateEnrollmentStatus(ctx, first.ID, &validator.EnrollmentStatusRequest{Status: "Dropped"}); err != nil {
		t.Fatalf("Failed to drop enrollment: %v", err)
	}

	// Only Active enrollments block a new one.
	if _, err := svc.Enroll(ctx, &validator.EnrollRequest{StudentID: 1, ClassID: 2}); err != nil {
		t.Errorf("Expected re-enrollment after drop, got %v", err)
	}
}

func TestStudentService_Create_UniquenessRules(t *testing.T) {
	studentRepo := newMockStudentRepository()
	userRepo := &mockUserRepository{usersByName: make(map[string]*models.User)}
	repo := &mockRepository{student: studentRepo, user: userRepo}
	svc := NewStudentService(repo, nil, testLogger(), validator.New(), events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	req := &validator.StudentCreateRequest{
		Username:  "jdoe",
		Password:  "long-enough-pass",
		FirstName: "Jordan",
		LastName:  "Doe",
		Email:     "jdoe@example.edu",
	}
	student, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Expected student created, got %v", err)
	}
	if student.UserID == 0 {
		t.Error("Student not linked to its user account")
	}

	dupUsername := *req
	dupUsername.Email = "other@example.edu"
	if _, err := svc.Create(ctx, &dupUsername); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Duplicate username error = %v, want ErrAlreadyExists", err)
	}

	dupEmail := *req
	dupEmail.Username = "jdoe2"
	if _, err := svc.Create(ctx, &dupEmail); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Duplicate email error = %v, want ErrAlreadyExists", err)
	}
}

func TestStudentService_Update_RoundTrip(t *testing.T) {
	studentRepo := newMockStudentRepository()
	userRepo := &mockUserRepository{usersByName: make(map[string]*models.User)}
	repo := &mockRepository{student: studentRepo, user: userRepo}
	svc := NewStudentService(repo, nil, testLogger(), validator.New(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &validator.StudentCreateRequest{
		Username:  "mlee",
		Password:  "long-enough-pass",
		FirstName: "Morgan",
		LastName:  "Lee",
		Email:     "mlee@example.edu",
	})
	if err != nil {
		t.Fatalf("Failed to create student: %v", err)
	}

	if _, err := svc.Update(ctx, created.ID, &validator.StudentUpdateRequest{
		FirstName: "Morrigan",
		LastName:  "Lee",
		Email:     "mlee@example.edu",
	}); err != nil {
		t.Fatalf("Failed to update student: %v", err)
	}

	fetched, err := svc.Get(ctx, Actor{Role: models.RoleAdmin}, created.ID)
	if err != nil {
		t.Fatalf("Failed to re-fetch student: %v", err)
	}
	if fetched.FirstName != "Morrigan" {
		t.Errorf("FirstName after update = %q, want Morrigan", fetched.FirstName)
	}

	_, err = svc.Update(ctx, 9999, &validator.StudentUpdateRequest{
		FirstName: "Nobody",
		LastName:  "Here",
		Email:     "nobody@example.edu",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Updating missing student: error = %v, want ErrNotFound", err)
	}
}

func TestStudentService_List_RoleScoping(t *testing.T) {
	studentRepo := newMockStudentRepository()
	repo := &mockRepository{student: studentRepo}
	svc := NewStudentService(repo, nil, testLogger(), validator.New(), nil)
	ctx := context.Background()

	if _, err := svc.List(ctx, Actor{UserID: 9, Role: models.RoleStudent}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Student listing students: error = %v, want ErrForbidden", err)
	}

	// A faculty user with no resolvable faculty row sees an empty list,
	// not an error.
	list, err := svc.List(ctx, Actor{UserID: 9, Role: models.RoleFaculty})
	if err != nil {
		t.Fatalf("Faculty listing failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty list, got %d rows", len(list))
	}
}
