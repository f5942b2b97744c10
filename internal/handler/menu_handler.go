package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"poi-be-svc/internal/middleware"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menuService   service.MenuService
	exportService service.MenuExportService
	logger        *logger.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService service.MenuService, exportService service.MenuExportService, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService:   menuService,
		exportService: exportService,
		logger:        logger,
	}
}

// GetMenuTree handles GET /api/v1/menus
// @Summary Get the navigation menu
// @Description Nested menu visible to the caller. Anonymous callers get global menus, signed-in users also get menus assigned to them, admins get every menu.
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.MenuNode} "Menus retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/menus [get]
func (h *MenuHandler) GetMenuTree(c *gin.Context) {
	tree, err := h.menuService.GetMenuTree(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menus retrieved successfully", tree)
}

// GetAllMenus handles GET /api/v1/menus/all
// @Summary List all menus
// @Description Flat list of every menu item with parent and owner populated
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param global query bool false "Filter by global flag"
// @Success 200 {object} utils.APIResponse{data=[]response.MenuResponse} "Menus retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/menus/all [get]
func (h *MenuHandler) GetAllMenus(c *gin.Context) {
	menus, err := h.menuService.GetAllMenus(c.Request.Context(), utils.ParseOptionalBool(c.Query("global")))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menus retrieved successfully", menus)
}

// GetMenu handles GET /api/v1/menus/:id
// @Summary Get a menu
// @Description Single menu item with its parent name
// @Tags menus
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} utils.APIResponse{data=response.MenuResponse} "Menu retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid menu ID"
// @Failure 404 {object} utils.APIResponse "Menu not found"
// @Router /api/v1/menus/{id} [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	menu, err := h.menuService.GetMenu(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menu retrieved successfully", menu)
}

// CreateMenu handles POST /api/v1/menus
// @Summary Create a menu
// @Description Creates a link or filter menu item, optionally under a root parent
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateMenuRequest true "Menu"
// @Success 201 {object} utils.APIResponse{data=response.MenuResponse} "Menu created successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed or nesting too deep"
// @Failure 404 {object} utils.APIResponse "Parent or user not found"
// @Router /api/v1/menus [post]
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var req service.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid create menu request")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	menu, err := h.menuService.CreateMenu(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create menu")
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Menu created successfully", menu)
}

// UpdateMenu handles PUT /api/v1/menus/:id
// @Summary Update a menu
// @Description Partial update. Send parent as null or "" to move the item to the root level.
// @Tags menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Param request body service.UpdateMenuRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response.MenuResponse} "Menu updated successfully"
// @Failure 400 {object} utils.APIResponse "Validation failed, self reference or nesting too deep"
// @Failure 404 {object} utils.APIResponse "Menu or parent not found"
// @Router /api/v1/menus/{id} [put]
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req service.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).WithField("menu_id", id).Error("Invalid update menu request")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	menu, err := h.menuService.UpdateMenu(c.Request.Context(), id, &req)
	if err != nil {
		h.logger.WithError(err).WithField("menu_id", id).Error("Failed to update menu")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menu updated successfully", menu)
}

// DeleteMenu handles DELETE /api/v1/menus/:id
// @Summary Delete a menu
// @Description Deletes a menu item that has no submenus, together with its assignments
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 200 {object} utils.APIResponse "Menu deleted successfully"
// @Failure 400 {object} utils.APIResponse "Menu has submenus"
// @Failure 404 {object} utils.APIResponse "Menu not found"
// @Router /api/v1/menus/{id} [delete]
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := h.menuService.DeleteMenu(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("menu_id", id).Error("Failed to delete menu")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Menu deleted successfully", nil)
}

// ExportMenus handles GET /api/v1/menus/export
// @Summary Export menus to Excel
// @Tags menus
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel workbook"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/menus/export [get]
func (h *MenuHandler) ExportMenus(c *gin.Context) {
	data, filename, err := h.exportService.ExportMenusToExcel(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to export menus")
		utils.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// AuditMenus handles GET /api/v1/menus/audit
// @Summary Audit menu structure
// @Description Lists stored menus whose parent is missing, is themselves, or is not a root
// @Tags menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.MenuAuditReport} "Audit completed"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/menus/audit [get]
func (h *MenuHandler) AuditMenus(c *gin.Context) {
	report, err := h.menuService.AuditMenus(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Audit completed", report)
}
