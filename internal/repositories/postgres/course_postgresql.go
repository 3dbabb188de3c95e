package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) repositories.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	if err := r.db.WithContext(ctx).
		Order("course_code").
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "list courses")
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, handleDBError(err, "get course by id")
	}
	return &course, nil
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).
		Where("course_code = ?", code).
		First(&course).Error; err != nil {
		return nil, handleDBError(err, "get course by code")
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return handleDBError(err, "create course")
	}
	return nil
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	result := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]interface{}{
			"course_code": course.CourseCode,
			"course_name": course.CourseName,
			"description": course.Description,
			"credits":     course.Credits,
			"department":  course.Department,
		})
	if result.Error != nil {
		return handleDBError(result.Error, "update course")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update course")
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete course")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete course")
	}
	return nil
}

func (r *courseRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("course_code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, handleDBError(err, "check course code exists")
	}
	return count > 0, nil
}

func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count courses")
	}
	return count, nil
}
