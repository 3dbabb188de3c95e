package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) repositories.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

const enrollmentSummarySelect = `student_class_enrollments.id as enrollment_id,
	students.first_name || ' ' || students.last_name as student_name,
	students.email as student_email, classes.class_name, courses.course_name,
	faculties.first_name || ' ' || faculties.last_name as faculty_name,
	student_class_enrollments.enrollment_date, student_class_enrollments.status`

func (r *enrollmentRepository) Enroll(ctx context.Context, enrollment *models.StudentClassEnrollment) error {
	if err := r.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return handleDBError(err, "enroll student")
	}
	return nil
}

func (r *enrollmentRepository) Remove(ctx context.Context, enrollmentID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.StudentClassEnrollment{}, enrollmentID)
	if result.Error != nil {
		return handleDBError(result.Error, "remove enrollment")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "remove enrollment")
	}
	return nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, enrollmentID uint) (*models.StudentClassEnrollment, error) {
	var enrollment models.StudentClassEnrollment
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Class").
		First(&enrollment, enrollmentID).Error; err != nil {
		return nil, handleDBError(err, "get enrollment by id")
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) GetByClass(ctx context.Context, classID uint) ([]models.EnrollmentSummary, error) {
	var summaries []models.EnrollmentSummary
	if err := r.db.WithContext(ctx).
		Model(&models.StudentClassEnrollment{}).
		Select(enrollmentSummarySelect).
		Joins("JOIN students ON students.id = student_class_enrollments.student_id").
		Joins("JOIN classes ON classes.id = student_class_enrollments.class_id").
		Joins("JOIN courses ON courses.id = classes.course_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Where("student_class_enrollments.class_id = ?", classID).
		Order("students.last_name, students.first_name").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list enrollments by class")
	}
	return summaries, nil
}

func (r *enrollmentRepository) GetByStudent(ctx context.Context, studentID uint) ([]models.EnrollmentSummary, error) {
	var summaries []models.EnrollmentSummary
	if err := r.db.WithContext(ctx).
		Model(&models.StudentClassEnrollment{}).
		Select(enrollmentSummarySelect).
		Joins("JOIN students ON students.id = student_class_enrollments.student_id").
		Joins("JOIN classes ON classes.id = student_class_enrollments.class_id").
		Joins("JOIN courses ON courses.id = classes.course_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Where("student_class_enrollments.student_id = ?", studentID).
		Order("student_class_enrollments.enrollment_date DESC").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list enrollments by student")
	}
	return summaries, nil
}

func (r *enrollmentRepository) UpdateStatus(ctx context.Context, enrollmentID uint, status models.EnrollmentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.StudentClassEnrollment{}).
		Where("id = ?", enrollmentID).
		Update("status", status)
	if result.Error != nil {
		return handleDBError(result.Error, "update enrollment status")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update enrollment status")
	}
	return nil
}

func (r *enrollmentRepository) IsEnrolled(ctx context.Context, studentID, classID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StudentClassEnrollment{}).
		Where("student_id = ? AND class_id = ? AND status = ?",
			studentID, classID, models.EnrollmentActive).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check enrollment")
	}
	return count > 0, nil
}
