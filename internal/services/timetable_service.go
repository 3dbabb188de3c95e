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

type timetableService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewTimetableService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) TimetableService {
	return &timetableService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *timetableService) ListSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return s.repo.Schedule().GetAll(ctx)
}

func (s *timetableService) GetSchedule(ctx context.Context, id uint) (*models.Schedule, error) {
	schedule, err := s.repo.Schedule().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return schedule, nil
}

func (s *timetableService) CreateSchedule(ctx context.Context, req *validator.ScheduleCreateRequest) (*models.Schedule, error) {
	s.logger.Info("Creating schedule", "class_id", req.ClassID, "day", req.DayOfWeek)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	schedule := &models.Schedule{
		ClassID:   req.ClassID,
		DayOfWeek: req.DayOfWeek,
		StartTime: parseTimeOfDay(req.StartTime),
		EndTime:   parseTimeOfDay(req.EndTime),
		Room:      req.Room,
	}
	if err := s.repo.Schedule().Create(ctx, schedule); err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, fmt.Errorf("class: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.logger.Info("Schedule created", "schedule_id", schedule.ID)
	s.publishEvent(ctx, events.ScheduleCreated, schedule)

	return schedule, nil
}

func (s *timetableService) UpdateSchedule(ctx context.Context, id uint, req *validator.ScheduleUpdateRequest) (*models.Schedule, error) {
	s.logger.Info("Updating schedule", "schedule_id", id)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	schedule, err := s.repo.Schedule().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	schedule.ClassID = req.ClassID
	schedule.DayOfWeek = req.DayOfWeek
	schedule.StartTime = parseTimeOfDay(req.StartTime)
	schedule.EndTime = parseTimeOfDay(req.EndTime)
	schedule.Room = req.Room

	if err := s.repo.Schedule().Update(ctx, schedule); err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, fmt.Errorf("class: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	s.publishEvent(ctx, events.ScheduleUpdated, schedule)
	return schedule, nil
}

func (s *timetableService) DeleteSchedule(ctx context.Context, id uint) error {
	s.logger.Info("Deleting schedule", "schedule_id", id)

	if err := s.repo.Schedule().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	s.publishEvent(ctx, events.ScheduleDeleted, map[string]uint{"schedule_id": id})
	return nil
}

func (s *timetableService) Grid(ctx context.Context, actor Actor) (*TimetableGrid, error) {
	var (
		entries []models.TimetableEntry
		err     error
	)
	switch {
	case actor.IsAdmin():
		entries, err = s.repo.Schedule().GetTimetable(ctx)
	case actor.IsFaculty():
		entries, err = s.repo.Schedule().GetTimetableByFacultyUserID(ctx, actor.UserID)
	default:
		entries, err = s.repo.Schedule().GetTimetableByStudentUserID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load timetable: %w", err)
	}

	return BuildTimetableGrid(entries), nil
}

func (s *timetableService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
