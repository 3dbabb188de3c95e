package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

// How many recently added people the dashboard shows per group.
const dashboardRecentLimit = 5

type dashboardService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.repo.Dashboard().GetCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}

	recentStudents, err := s.repo.Dashboard().RecentStudents(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent students: %w", err)
	}

	recentFaculty, err := s.repo.Dashboard().RecentFaculty(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent faculty: %w", err)
	}

	return &DashboardStats{
		Counts:         *counts,
		RecentStudents: recentStudents,
		RecentFaculty:  recentFaculty,
	}, nil
}
