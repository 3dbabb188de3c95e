package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/events"
	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type courseService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewCourseService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) CourseService {
	return &courseService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *courseService) List(ctx context.Context) ([]*models.Course, error) {
	return s.repo.Course().GetAll(ctx)
}

func (s *courseService) Get(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, req *validator.CourseCreateRequest) (*models.Course, error) {
	s.logger.Info("Creating course", "course_code", req.CourseCode)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.Course().CodeExists(ctx, req.CourseCode, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check course code uniqueness: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("course code %q: %w", req.CourseCode, ErrAlreadyExists)
	}

	course := &models.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		Credits:     req.Credits,
		Department:  req.Department,
	}
	if err := s.repo.Course().Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("course code %q: %w", req.CourseCode, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("Course created", "course_id", course.ID)
	s.publishEvent(ctx, events.CourseCreated, course)

	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *validator.CourseUpdateRequest) (*models.Course, error) {
	s.logger.Info("Updating course", "course_id", id)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	exists, err := s.repo.Course().CodeExists(ctx, req.CourseCode, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check course code uniqueness: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("course code %q: %w", req.CourseCode, ErrAlreadyExists)
	}

	course.CourseCode = req.CourseCode
	course.CourseName = req.CourseName
	course.Description = req.Description
	course.Credits = req.Credits
	course.Department = req.Department

	if err := s.repo.Course().Update(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("course code %q: %w", req.CourseCode, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	s.publishEvent(ctx, events.CourseUpdated, course)
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting course", "course_id", id)

	if err := s.repo.Course().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		if errors.Is(err, repositories.ErrInvalidReference) {
			return fmt.Errorf("course still has classes: %w", ErrInvalidReference)
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.publishEvent(ctx, events.CourseDeleted, map[string]uint{"course_id": id})
	return nil
}

func (s *courseService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
