package repository

import (
	"context"

	"gorm.io/gorm"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetMenuStatistics(ctx context.Context) (*response.MenuStatisticsResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetMenuStatistics counts menu items by scope, type and depth, plus assignments and users
func (r *dashboardRepository) GetMenuStatistics(ctx context.Context) (*response.MenuStatisticsResponse, error) {
	var result response.MenuStatisticsResponse

	query := `
		SELECT
			COUNT(*) AS total_menus,
			COALESCE(SUM(CASE WHEN is_global THEN 1 ELSE 0 END), 0) AS global_menus,
			COALESCE(SUM(CASE WHEN is_global THEN 0 ELSE 1 END), 0) AS user_specific_menus,
			COALESCE(SUM(CASE WHEN menu_type = ? THEN 1 ELSE 0 END), 0) AS link_menus,
			COALESCE(SUM(CASE WHEN menu_type = ? THEN 1 ELSE 0 END), 0) AS filter_menus,
			COALESCE(SUM(CASE WHEN parent_id IS NULL THEN 1 ELSE 0 END), 0) AS root_menus,
			COALESCE(SUM(CASE WHEN parent_id IS NULL THEN 0 ELSE 1 END), 0) AS child_menus
		FROM menu_items
	`

	err := r.db.WithContext(ctx).Raw(query, string(models.MenuTypeLink), string(models.MenuTypeFilter)).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&models.UserMenu{}).Count(&result.Assignments).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&result.Users).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
