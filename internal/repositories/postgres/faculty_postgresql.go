package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type facultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) repositories.FacultyRepository {
	return &facultyRepository{db: db}
}

const facultySummarySelect = `faculties.id as faculty_id, users.username, faculties.first_name,
	faculties.last_name, faculties.email, faculties.phone, faculties.department,
	faculties.hire_date, users.created_at`

func (r *facultyRepository) GetAll(ctx context.Context) ([]models.FacultySummary, error) {
	var summaries []models.FacultySummary
	if err := r.db.WithContext(ctx).
		Model(&models.Faculty{}).
		Select(facultySummarySelect).
		Joins("JOIN users ON users.id = faculties.user_id").
		Order("faculties.id").
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list faculty")
	}
	return summaries, nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id uint) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&faculty, id).Error; err != nil {
		return nil, handleDBError(err, "get faculty by id")
	}
	return &faculty, nil
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("email = ?", email).
		First(&faculty).Error; err != nil {
		return nil, handleDBError(err, "get faculty by email")
	}
	return &faculty, nil
}

func (r *facultyRepository) GetByUserID(ctx context.Context, userID uint) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&faculty).Error; err != nil {
		return nil, handleDBError(err, "get faculty by user id")
	}
	return &faculty, nil
}

func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		faculty.UserID = user.ID
		if faculty.HireDate == nil {
			now := time.Now()
			faculty.HireDate = &now
		}
		return tx.Create(faculty).Error
	})
	if err != nil {
		return handleDBError(err, "create faculty")
	}
	return nil
}

func (r *facultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	result := r.db.WithContext(ctx).
		Model(&models.Faculty{}).
		Where("id = ?", faculty.ID).
		Updates(map[string]interface{}{
			"first_name": faculty.FirstName,
			"last_name":  faculty.LastName,
			"email":      faculty.Email,
			"phone":      faculty.Phone,
			"department": faculty.Department,
		})
	if result.Error != nil {
		return handleDBError(result.Error, "update faculty")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update faculty")
	}
	return nil
}

func (r *facultyRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var faculty models.Faculty
		if err := tx.First(&faculty, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Faculty{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, faculty.UserID).Error
	})
	if err != nil {
		return handleDBError(err, "delete faculty")
	}
	return nil
}

func (r *facultyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Faculty{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check faculty email exists")
	}
	return count > 0, nil
}

func (r *facultyRepository) Recent(ctx context.Context, limit int) ([]models.FacultySummary, error) {
	var summaries []models.FacultySummary
	if err := r.db.WithContext(ctx).
		Model(&models.Faculty{}).
		Select(facultySummarySelect).
		Joins("JOIN users ON users.id = faculties.user_id").
		Order("faculties.hire_date DESC NULLS LAST").
		Limit(limit).
		Scan(&summaries).Error; err != nil {
		return nil, handleDBError(err, "list recent faculty")
	}
	return summaries, nil
}

func (r *facultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Faculty{}).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count faculty")
	}
	return count, nil
}
