package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) repositories.ClassRepository {
	return &classRepository{db: db}
}

const classSummarySelect = `classes.id as class_id, classes.class_name, courses.course_name,
	faculties.first_name || ' ' || faculties.last_name as faculty_name,
	classes.semester, classes.year`

func (r *classRepository) GetAll(ctx context.Context) ([]models.ClassSummary, error) {
	var summaries []models.ClassSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Select(classSummarySelect).
		Joins("JOIN courses ON courses.id = classes.course_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Order("classes.id").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list classes")
	}
	return summaries, nil
}

func (r *classRepository) GetByID(ctx context.Context, id uint) (*models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Faculty").
		First(&class, id).Error; err != nil {
		return nil, handleDBError(err, "get class by id")
	}
	return &class, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return handleDBError(err, "create class")
	}
	return nil
}

func (r *classRepository) Update(ctx context.Context, class *models.Class) error {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", class.ID).
		Updates(map[string]interface{}{
			"class_name": class.ClassName,
			"course_id":  class.CourseID,
			"faculty_id": class.FacultyID,
			"semester":   class.Semester,
			"year":       class.Year,
		})
	if result.Error != nil {
		return handleDBError(result.Error, "update class")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update class")
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, id).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).
			Delete(&models.StudentClassEnrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).
			Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Class{}, id).Error
	})
	if err != nil {
		return handleDBError(err, "delete class")
	}
	return nil
}

func (r *classRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count classes")
	}
	return count, nil
}

func (r *classRepository) GetByStudentUserID(ctx context.Context, userID uint) ([]models.ClassSummary, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []models.ClassSummary{}, nil
		}
		return nil, handleDBError(err, "resolve student for class list")
	}

	var summaries []models.ClassSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Select(classSummarySelect).
		Joins("JOIN courses ON courses.id = classes.course_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Joins("JOIN student_class_enrollments ON student_class_enrollments.class_id = classes.id").
		Where("student_class_enrollments.student_id = ?", student.ID).
		Order("classes.id").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list classes by student")
	}
	return summaries, nil
}

func (r *classRepository) GetByFacultyUserID(ctx context.Context, userID uint) ([]models.ClassSummary, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&faculty).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []models.ClassSummary{}, nil
		}
		return nil, handleDBError(err, "resolve faculty for class list")
	}

	var summaries []models.ClassSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Select(classSummarySelect).
		Joins("JOIN courses ON courses.id = classes.course_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Where("classes.faculty_id = ?", faculty.ID).
		Order("classes.id").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list classes by faculty")
	}
	return summaries, nil
}

func (r *classRepository) IsStudentEnrolledByUserID(ctx context.Context, userID, classID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StudentClassEnrollment{}).
		Joins("JOIN students ON students.id = student_class_enrollments.student_id").
		Where("students.user_id = ? AND student_class_enrollments.class_id = ?", userID, classID).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check student enrolled in class")
	}
	return count > 0, nil
}

func (r *classRepository) IsFacultyAssignedByUserID(ctx context.Context, userID, classID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Where("faculties.user_id = ? AND classes.id = ?", userID, classID).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check faculty assigned to class")
	}
	return count > 0, nil
}
