package handler

import (
	"github.com/gin-gonic/gin"

	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

// UserMenuHandler handles per-user menu assignment requests
type UserMenuHandler struct {
	userMenuService service.UserMenuService
	logger          *logger.Logger
}

// NewUserMenuHandler creates a new user menu handler
func NewUserMenuHandler(userMenuService service.UserMenuService, logger *logger.Logger) *UserMenuHandler {
	return &UserMenuHandler{
		userMenuService: userMenuService,
		logger:          logger,
	}
}

// ListUsers handles GET /api/v1/user-menus/users
// @Summary List assignable users
// @Tags user-menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.AssignableUserResponse} "Users retrieved successfully"
// @Router /api/v1/user-menus/users [get]
func (h *UserMenuHandler) ListUsers(c *gin.Context) {
	users, err := h.userMenuService.ListAssignableUsers(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// AssignGlobal handles POST /api/v1/user-menus/assign-global
// @Summary Assign global menus to every user
// @Description Replaces any existing assignment of these menus with a fresh one per user. Every id must be a global menu.
// @Tags user-menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.AssignGlobalRequest true "Global menu ids"
// @Success 200 {object} utils.APIResponse{data=response.AssignGlobalResponse} "Menus assigned"
// @Failure 400 {object} utils.APIResponse "Invalid or non-global ids"
// @Failure 404 {object} utils.APIResponse "Menus not found"
// @Router /api/v1/user-menus/assign-global [post]
func (h *UserMenuHandler) AssignGlobal(c *gin.Context) {
	var req service.AssignGlobalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	result, err := h.userMenuService.AssignGlobalToAllUsers(c.Request.Context(), req.MenuIDs)
	if err != nil {
		h.logger.WithError(err).WithField("menu_ids", req.MenuIDs).Error("Failed to assign global menus")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menus assigned to all users successfully", result)
}

// GetUserMenus handles GET /api/v1/user-menus/user/:userId
// @Summary Get a user's menu assignments
// @Description Assigned menu ids plus every menu the user could see
// @Tags user-menus
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=response.UserMenuAssignmentResponse} "Assignments retrieved successfully"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Router /api/v1/user-menus/user/{userId} [get]
func (h *UserMenuHandler) GetUserMenus(c *gin.Context) {
	userID, err := utils.GetObjectIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.userMenuService.GetUserAssignments(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Assignments retrieved successfully", result)
}

// AssignUserMenus handles POST /api/v1/user-menus/user/:userId
// @Summary Replace a user's menu assignments
// @Description The user ends up assigned to exactly the given ids. An empty list removes every assignment.
// @Tags user-menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body service.AssignMenusRequest true "Menu ids"
// @Success 200 {object} utils.APIResponse "Menus assigned successfully"
// @Failure 400 {object} utils.APIResponse "Invalid ids"
// @Failure 404 {object} utils.APIResponse "User or menus not found"
// @Router /api/v1/user-menus/user/{userId} [post]
func (h *UserMenuHandler) AssignUserMenus(c *gin.Context) {
	userID, err := utils.GetObjectIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req service.AssignMenusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	assigned, err := h.userMenuService.AssignToUser(c.Request.Context(), userID, req.MenuIDs)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to assign menus")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menus assigned successfully", gin.H{"assignedMenuIds": assigned})
}

// CreateUserMenu handles POST /api/v1/user-menus/user/:userId/menu
// @Summary Create a menu for one user
// @Description Creates a non-global menu owned by the user and assigns it to them
// @Tags user-menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body service.CreateMenuRequest true "Menu"
// @Success 201 {object} utils.APIResponse{data=response.MenuResponse} "Menu created successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed or nesting too deep"
// @Failure 404 {object} utils.APIResponse "User or parent not found"
// @Router /api/v1/user-menus/user/{userId}/menu [post]
func (h *UserMenuHandler) CreateUserMenu(c *gin.Context) {
	userID, err := utils.GetObjectIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req service.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	menu, err := h.userMenuService.CreateUserSpecificMenu(c.Request.Context(), userID, &req)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to create user menu")
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Menu created successfully", menu)
}
