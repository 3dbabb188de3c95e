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

type facultyService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewFacultyService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) FacultyService {
	return &facultyService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *facultyService) List(ctx context.Context) ([]models.FacultySummary, error) {
	return s.repo.Faculty().GetAll(ctx)
}

func (s *facultyService) Get(ctx context.Context, id uint) (*models.Faculty, error) {
	faculty, err := s.repo.Faculty().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get faculty member: %w", err)
	}
	return faculty, nil
}

func (s *facultyService) Create(ctx context.Context, req *validator.FacultyCreateRequest) (*models.Faculty, error) {
	s.logger.Info("Creating faculty member", "username", req.Username, "email", req.Email)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taken, err := s.repo.User().ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("username %q: %w", req.Username, ErrAlreadyExists)
	}

	used, err := s.repo.Faculty().ExistsByEmail(ctx, req.Email)
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
		Role:         models.RoleFaculty,
	}
	faculty := &models.Faculty{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		HireDate:   req.HireDate,
	}

	if err := s.repo.Faculty().Create(ctx, faculty, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("faculty account: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create faculty member: %w", err)
	}
	faculty.User = *user

	s.logger.Info("Faculty member created", "faculty_id", faculty.ID, "user_id", user.ID)
	s.publishEvent(ctx, events.FacultyCreated, faculty)

	return faculty, nil
}

func (s *facultyService) Update(ctx context.Context, id uint, req *validator.FacultyUpdateRequest) (*models.Faculty, error) {
	s.logger.Info("Updating faculty member", "faculty_id", id)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	faculty, err := s.repo.Faculty().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get faculty member: %w", err)
	}

	if req.Email != faculty.Email {
		used, err := s.repo.Faculty().ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if used {
			return nil, fmt.Errorf("email %q: %w", req.Email, ErrAlreadyExists)
		}
	}

	faculty.FirstName = req.FirstName
	faculty.LastName = req.LastName
	faculty.Email = req.Email
	faculty.Phone = req.Phone
	faculty.Department = req.Department

	if err := s.repo.Faculty().Update(ctx, faculty); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("email %q: %w", req.Email, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update faculty member: %w", err)
	}

	s.publishEvent(ctx, events.FacultyUpdated, faculty)
	return faculty, nil
}

func (s *facultyService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting faculty member", "faculty_id", id)

	if err := s.repo.Faculty().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		if errors.Is(err, repositories.ErrInvalidReference) {
			// Classes still reference this instructor.
			return fmt.Errorf("faculty member still teaches classes: %w", ErrInvalidReference)
		}
		return fmt.Errorf("failed to delete faculty member: %w", err)
	}

	s.publishEvent(ctx, events.FacultyDeleted, map[string]uint{"faculty_id": id})
	return nil
}

func (s *facultyService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
