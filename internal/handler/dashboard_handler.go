package handler

import (
	"github.com/gin-gonic/gin"

	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetMenuStatistics handles GET /api/v1/dashboard/menu-statistics
// @Summary Get menu statistics
// @Description Counts of menus by scope, type and level, plus assignments and users
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.MenuStatisticsResponse} "Successfully retrieved menu statistics"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/menu-statistics [get]
func (h *DashboardHandler) GetMenuStatistics(c *gin.Context) {
	statistics, err := h.dashboardService.GetMenuStatistics(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Successfully retrieved menu statistics", statistics)
}
