package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

type dashboardRepository struct {
	db       *gorm.DB
	students repositories.StudentRepository
	faculty  repositories.FacultyRepository
}

func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{
		db:       db,
		students: NewStudentRepository(db),
		faculty:  NewFacultyRepository(db),
	}
}

func (r *dashboardRepository) GetCounts(ctx context.Context) (*repositories.DashboardCounts, error) {
	counts := &repositories.DashboardCounts{}

	tally := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{dest: &counts.Admins, query: r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin)},
		{dest: &counts.Students, query: r.db.WithContext(ctx).Model(&models.Student{})},
		{dest: &counts.Faculty, query: r.db.WithContext(ctx).Model(&models.Faculty{})},
		{dest: &counts.Courses, query: r.db.WithContext(ctx).Model(&models.Course{})},
		{dest: &counts.Classes, query: r.db.WithContext(ctx).Model(&models.Class{})},
	}
	for _, t := range tally {
		if err := t.query.Count(t.dest).Error; err != nil {
			return nil, handleDBError(err, "load dashboard counts")
		}
	}
	return counts, nil
}

func (r *dashboardRepository) RecentStudents(ctx context.Context, limit int) ([]models.StudentSummary, error) {
	return r.students.Recent(ctx, limit)
}

func (r *dashboardRepository) RecentFaculty(ctx context.Context, limit int) ([]models.FacultySummary, error) {
	return r.faculty.Recent(ctx, limit)
}
