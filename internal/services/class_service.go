package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/events"
	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type classService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewClassService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ClassService {
	return &classService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *classService) List(ctx context.Context, actor Actor) ([]models.ClassSummary, error) {
	switch {
	case actor.IsAdmin():
		return s.repo.Class().GetAll(ctx)
	case actor.IsFaculty():
		return s.repo.Class().GetByFacultyUserID(ctx, actor.UserID)
	default:
		return s.repo.Class().GetByStudentUserID(ctx, actor.UserID)
	}
}

func (s *classService) Get(ctx context.Context, actor Actor, id uint) (*models.Class, error) {
	class, err := s.repo.Class().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	if err := s.guardClassAccess(ctx, actor, id); err != nil {
		return nil, err
	}
	return class, nil
}

// guardClassAccess lets admins through, faculty only for classes they
// teach, students only for classes they are enrolled in.
func (s *classService) guardClassAccess(ctx context.Context, actor Actor, classID uint) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsFaculty():
		assigned, err := s.repo.Class().IsFacultyAssignedByUserID(ctx, actor.UserID, classID)
		if err != nil {
			return fmt.Errorf("failed to check class assignment: %w", err)
		}
		if !assigned {
			return ErrForbidden
		}
		return nil
	default:
		enrolled, err := s.repo.Class().IsStudentEnrolledByUserID(ctx, actor.UserID, classID)
		if err != nil {
			return fmt.Errorf("failed to check class enrollment: %w", err)
		}
		if !enrolled {
			return ErrForbidden
		}
		return nil
	}
}

func (s *classService) Create(ctx context.Context, req *validator.ClassCreateRequest) (*models.Class, error) {
	s.logger.Info("Creating class", "class_name", req.ClassName, "course_id", req.CourseID)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	class := &models.Class{
		ClassName: req.ClassName,
		CourseID:  req.CourseID,
		FacultyID: req.FacultyID,
		Semester:  req.Semester,
		Year:      req.Year,
	}
	if err := s.repo.Class().Create(ctx, class); err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, fmt.Errorf("course or faculty: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	s.logger.Info("Class created", "class_id", class.ID)
	s.publishEvent(ctx, events.ClassCreated, class)

	return class, nil
}

func (s *classService) Update(ctx context.Context, id uint, req *validator.ClassUpdateRequest) (*models.Class, error) {
	s.logger.Info("Updating class", "class_id", id)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	class, err := s.repo.Class().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	class.ClassName = req.ClassName
	class.CourseID = req.CourseID
	class.FacultyID = req.FacultyID
	class.Semester = req.Semester
	class.Year = req.Year

	if err := s.repo.Class().Update(ctx, class); err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, fmt.Errorf("course or faculty: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to update class: %w", err)
	}

	s.publishEvent(ctx, events.ClassUpdated, class)
	return class, nil
}

func (s *classService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting class", "class_id", id)

	if err := s.repo.Class().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete class: %w", err)
	}

	s.publishEvent(ctx, events.ClassDeleted, map[string]uint{"class_id": id})
	return nil
}

// ===== ENROLLMENT =====

func (s *classService) Enroll(ctx context.Context, req *validator.EnrollRequest) (*models.StudentClassEnrollment, error) {
	s.logger.Info("Enrolling student", "student_id", req.StudentID, "class_id", req.ClassID)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	enrolled, err := s.repo.Enrollment().IsEnrolled(ctx, req.StudentID, req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return nil, fmt.Errorf("student already enrolled in class: %w", ErrAlreadyExists)
	}

	enrollment := &models.StudentClassEnrollment{
		StudentID:      req.StudentID,
		ClassID:        req.ClassID,
		EnrollmentDate: time.Now(),
		Status:         models.EnrollmentActive,
	}
	if err := s.repo.Enrollment().Enroll(ctx, enrollment); err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, fmt.Errorf("student or class: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to enroll student: %w", err)
	}

	s.logger.Info("Student enrolled", "enrollment_id", enrollment.ID)
	s.publishEvent(ctx, events.StudentEnrolled, enrollment)

	return enrollment, nil
}

func (s *classService) Roster(ctx context.Context, actor Actor, classID uint) ([]models.EnrollmentSummary, error) {
	if _, err := s.Get(ctx, actor, classID); err != nil {
		return nil, err
	}
	return s.repo.Enrollment().GetByClass(ctx, classID)
}

func (s *classService) RemoveEnrollment(ctx context.Context, enrollmentID uint) error {
	s.logger.Info("Removing enrollment", "enrollment_id", enrollmentID)

	if err := s.repo.Enrollment().Remove(ctx, enrollmentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove enrollment: %w", err)
	}

	s.publishEvent(ctx, events.EnrollmentRemoved, map[string]uint{"enrollment_id": enrollmentID})
	return nil
}

func (s *classService) UpdateEnrollmentStatus(ctx context.Context, enrollmentID uint, req *validator.EnrollmentStatusRequest) error {
	s.logger.Info("Updating enrollment status", "enrollment_id", enrollmentID, "status", req.Status)

	if err := s.validator.Validate(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	status := models.EnrollmentStatus(req.Status)
	if err := s.repo.Enrollment().UpdateStatus(ctx, enrollmentID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update enrollment status: %w", err)
	}

	s.publishEvent(ctx, events.EnrollmentStatusChanged, map[string]interface{}{
		"enrollment_id": enrollmentID,
		"status":        status,
	})
	return nil
}

func (s *classService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
