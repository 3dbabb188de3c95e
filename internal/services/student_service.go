package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/auth"
	"github.com/SAP-F-2025/sims-service/internal/events"
	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewStudentService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) StudentService {
	return &studentService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *studentService) List(ctx context.Context, actor Actor) ([]models.StudentSummary, error) {
	switch {
	case actor.IsAdmin():
		return s.repo.Student().GetAll(ctx)
	case actor.IsFaculty():
		return s.repo.Student().GetByFacultyUserID(ctx, actor.UserID)
	default:
		return nil, ErrForbidden
	}
}

func (s *studentService) Get(ctx context.Context, actor Actor, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	switch {
	case actor.IsAdmin():
		return student, nil
	case actor.IsFaculty():
		inClasses, err := s.repo.Student().IsInFacultyClasses(ctx, id, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check class membership: %w", err)
		}
		if !inClasses {
			return nil, ErrForbidden
		}
		return student, nil
	default:
		if student.UserID != actor.UserID {
			return nil, ErrForbidden
		}
		return student, nil
	}
}

func (s *studentService) Create(ctx context.Context, req *validator.StudentCreateRequest) (*models.Student, error) {
	s.logger.Info("Creating student", "username", req.Username, "email", req.Email)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taken, err := s.repo.Student().ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("username %q: %w", req.Username, ErrAlreadyExists)
	}

	used, err := s.repo.Student().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if used {
		return nil, fmt.Errorf("email %q: %w", req.Email, ErrAlreadyExists)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.RoleStudent,
	}
	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Program:     req.Program,
	}

	if err := s.repo.Student().Create(ctx, student, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("student account: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	student.User = *user

	s.logger.Info("Student created", "student_id", student.ID, "user_id", user.ID)
	s.publishEvent(ctx, events.StudentCreated, student)

	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *validator.StudentUpdateRequest) (*models.Student, error) {
	s.logger.Info("Updating student", "student_id", id)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if req.Email != student.Email {
		used, err := s.repo.Student().ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if used {
			return nil, fmt.Errorf("email %q: %w", req.Email, ErrAlreadyExists)
		}
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.DateOfBirth = req.DateOfBirth
	student.Gender = req.Gender
	student.Email = req.Email
	student.Phone = req.Phone
	student.Address = req.Address
	student.Program = req.Program

	if err := s.repo.Student().Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("email %q: %w", req.Email, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	s.publishEvent(ctx, events.StudentUpdated, student)
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting student", "student_id", id)

	if err := s.repo.Student().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}

	s.publishEvent(ctx, events.StudentDeleted, map[string]uint{"student_id": id})
	return nil
}

func (s *studentService) Enrollments(ctx context.Context, actor Actor, studentID uint) ([]models.EnrollmentSummary, error) {
	if _, err := s.Get(ctx, actor, studentID); err != nil {
		return nil, err
	}
	return s.repo.Enrollment().GetByStudent(ctx, studentID)
}

func (s *studentService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
