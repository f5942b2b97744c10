package handler

import (
	"github.com/gin-gonic/gin"

	"poi-be-svc/internal/middleware"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetMe handles GET /api/v1/auth/me
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.AuthUser} "User retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Router /api/v1/auth/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	user, err := h.userService.GetProfile(c.Request.Context(), caller.UserID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", caller.UserID).Error("Failed to get current user")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}
