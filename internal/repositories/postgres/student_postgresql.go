package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) repositories.StudentRepository {
	return &studentRepository{db: db}
}

const studentSummarySelect = `students.id as student_id, users.username, students.first_name,
	students.last_name, students.date_of_birth, students.gender, students.email,
	students.phone, students.address, students.enrollment_date, students.program,
	users.created_at`

func (r *studentRepository) GetAll(ctx context.Context) ([]models.StudentSummary, error) {
	var summaries []models.StudentSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Select(studentSummarySelect).
		Joins("JOIN users ON users.id = students.user_id").
		Order("students.id").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list students")
	}
	return summaries, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&student, id).Error; err != nil {
		return nil, handleDBError(err, "get student by id")
	}
	return &student, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("email = ?", email).
		First(&student).Error; err != nil {
		return nil, handleDBError(err, "get student by email")
	}
	return &student, nil
}

func (r *studentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = students.user_id").
		Where("users.username = ?", username).
		First(&student).Error; err != nil {
		return nil, handleDBError(err, "get student by username")
	}
	return &student, nil
}

func (r *studentRepository) GetByUserID(ctx context.Context, userID uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		return nil, handleDBError(err, "get student by user id")
	}
	return &student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		student.UserID = user.ID
		if student.EnrollmentDate == nil {
			now := time.Now()
			student.EnrollmentDate = &now
		}
		return tx.Create(student).Error
	})
	if err != nil {
		return handleDBError(err, "create student")
	}
	return nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	result := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"first_name":    student.FirstName,
			"last_name":     student.LastName,
			"date_of_birth": student.DateOfBirth,
			"gender":        student.Gender,
			"email":         student.Email,
			"phone":         student.Phone,
			"address":       student.Address,
			"program":       student.Program,
		})
	if result.Error != nil {
		return handleDBError(result.Error, "update student")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update student")
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).
			Delete(&models.StudentClassEnrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Student{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, student.UserID).Error
	})
	if err != nil {
		return handleDBError(err, "delete student")
	}
	return nil
}

func (r *studentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check student email exists")
	}
	return count > 0, nil
}

func (r *studentRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check student username exists")
	}
	return count > 0, nil
}

func (r *studentRepository) GetByFacultyUserID(ctx context.Context, userID uint) ([]models.StudentSummary, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&faculty).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []models.StudentSummary{}, nil
		}
		return nil, handleDBError(err, "resolve faculty for student list")
	}

	var summaries []models.StudentSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Distinct().
		Select(studentSummarySelect).
		Joins("JOIN users ON users.id = students.user_id").
		Joins("JOIN student_class_enrollments ON student_class_enrollments.student_id = students.id").
		Joins("JOIN classes ON classes.id = student_class_enrollments.class_id").
		Where("classes.faculty_id = ?", faculty.ID).
		Order("students.id").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list students by faculty")
	}
	return summaries, nil
}

func (r *studentRepository) IsInFacultyClasses(ctx context.Context, studentID, facultyUserID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StudentClassEnrollment{}).
		Joins("JOIN classes ON classes.id = student_class_enrollments.class_id").
		Joins("JOIN faculties ON faculties.id = classes.faculty_id").
		Where("student_class_enrollments.student_id = ? AND faculties.user_id = ?", studentID, facultyUserID).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check student in faculty classes")
	}
	return count > 0, nil
}

func (r *studentRepository) Recent(ctx context.Context, limit int) ([]models.StudentSummary, error) {
	var summaries []models.StudentSummary
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Select(studentSummarySelect).
		Joins("JOIN users ON users.id = students.user_id").
		Order("students.enrollment_date DESC NULLS LAST").
		Limit(limit).
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list recent students")
	}
	return summaries, nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count students")
	}
	return count, nil
}
