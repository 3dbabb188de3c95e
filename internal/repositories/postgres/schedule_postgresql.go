package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) repositories.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const timetableEntrySelect = `schedules.id as schedule_id, classes.id as class_id,
	classes.class_name, courses.course_code, courses.course_name,
	faculties.first_name || ' ' || faculties.last_name as faculty_name,
	schedules.day_of_week, schedules.start_time, schedules.end_time,
	schedules.room, classes.semester, classes.year`

func (r *scheduleRepository) timetableQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Select(timetableEntrySelect).
		Joins("JOIN classes ON classes.id = schedules.class_id").
		Joins("JOIN courses ON courses.id = classes.course_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Order("schedules.day_of_week, schedules.start_time")
}

func (r *scheduleRepository) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Class.Course").
		Order("day_of_week, start_time").
		Find(&schedules).Error; err != nil {
		return nil, handleDBError(err, "list schedules")
	}
	return schedules, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Class.Course").
		First(&schedule, id).Error; err != nil {
		return nil, handleDBError(err, "get schedule by id")
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetByClassID(ctx context.Context, classID uint) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	if err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("day_of_week, start_time").
		Find(&schedules).Error; err != nil {
		return nil, handleDBError(err, "list schedules by class")
	}
	return schedules, nil
}

func (r *scheduleRepository) GetByDayOfWeek(ctx context.Context, day string) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Class.Course").
		Where("day_of_week = ?", day).
		Order("start_time").
		Find(&schedules).Error; err != nil {
		return nil, handleDBError(err, "list schedules by day")
	}
	return schedules, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	if err := r.db.WithContext(ctx).Create(schedule).Error; err != nil {
		return handleDBError(err, "create schedule")
	}
	return nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	result := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]interface{}{
			"class_id":    schedule.ClassID,
			"day_of_week": schedule.DayOfWeek,
			"start_time":  schedule.StartTime,
			"end_time":    schedule.EndTime,
			"room":        schedule.Room,
		})
	if result.Error != nil {
		return handleDBError(result.Error, "update schedule")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update schedule")
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Schedule{}, id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete schedule")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete schedule")
	}
	return nil
}

func (r *scheduleRepository) GetTimetable(ctx context.Context) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	if err := r.timetableQuery(ctx).Scan(&entries).Error; err != nil {
		return nil, handleDBError(err, "load timetable")
	}
	return entries, nil
}

func (r *scheduleRepository) GetTimetableByStudentUserID(ctx context.Context, userID uint) ([]models.TimetableEntry, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []models.TimetableEntry{}, nil
		}
		return nil, handleDBError(err, "resolve student for timetable")
	}

	var entries []models.TimetableEntry
	if err := r.timetableQuery(ctx).
		Joins("JOIN student_class_enrollments ON student_class_enrollments.class_id = classes.id").
		Where("student_class_enrollments.student_id = ? AND student_class_enrollments.status = ?",
			student.ID, models.EnrollmentActive).
		Scan(&entries).Error; err != nil {
		return nil, handleDBError(err, "load student timetable")
	}
	return entries, nil
}

func (r *scheduleRepository) GetTimetableByFacultyUserID(ctx context.Context, userID uint) ([]models.TimetableEntry, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&faculty).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []models.TimetableEntry{}, nil
		}
		return nil, handleDBError(err, "resolve faculty for timetable")
	}

	var entries []models.TimetableEntry
	if err := r.timetableQuery(ctx).
		Where("classes.faculty_id = ?", faculty.ID).
		Scan(&entries).Error; err != nil {
		return nil, handleDBError(err, "load faculty timetable")
	}
	return entries, nil
}
