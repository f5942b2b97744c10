package service

import (
	"context"

	"poi-be-svc/internal/models/response"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
	"poi-be-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetMenuStatistics(ctx context.Context) (*response.MenuStatisticsResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetMenuStatistics gets menu and assignment counts
func (s *dashboardService) GetMenuStatistics(ctx context.Context) (*response.MenuStatisticsResponse, error) {
	statistics, err := s.dashboardRepo.GetMenuStatistics(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get menu statistics")
		return nil, apperror.Store(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"total_menus": statistics.TotalMenus,
		"assignments": statistics.Assignments,
	}).Info("Menu statistics retrieved successfully")

	return statistics, nil
}
