package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

// Audit issue codes
const (
	IssueDanglingParent = "dangling_parent"
	IssueSelfParent     = "self_parent"
	IssueDepthExceeded  = "depth_exceeded"
)

// MenuService interface defines menu service methods
type MenuService interface {
	GetMenuTree(ctx context.Context, caller auth.Caller) ([]*response.MenuNode, error)
	GetAllMenus(ctx context.Context, isGlobal *bool) ([]response.MenuResponse, error)
	GetMenu(ctx context.Context, id string) (*response.MenuResponse, error)
	CreateMenu(ctx context.Context, req *CreateMenuRequest) (*response.MenuResponse, error)
	UpdateMenu(ctx context.Context, id string, req *UpdateMenuRequest) (*response.MenuResponse, error)
	DeleteMenu(ctx context.Context, id string) error
	AuditMenus(ctx context.Context) (*response.MenuAuditReport, error)
}

// CreateMenuRequest represents the request to create a menu item
type CreateMenuRequest struct {
	Name             string   `json:"name" binding:"required" example:"Taipei cafes"`
	Link             string   `json:"link" example:"/cafes"`
	MenuType         string   `json:"menuType" binding:"omitempty,oneof=link filter" example:"filter"`
	FilterProvince   string   `json:"filterProvince" example:"Taipei"`
	FilterDistrict   string   `json:"filterDistrict" example:"Da'an"`
	FilterCategories []string `json:"filterCategories" binding:"omitempty,dive,objectid"`
	Parent           *string  `json:"parent" example:"65a1f0c2a1b2c3d4e5f60718"`
	Order            *int     `json:"order" example:"0"`
	IsGlobal         *bool    `json:"isGlobal" example:"true"`
	UserID           *string  `json:"userId"`
}

// UpdateMenuRequest represents a partial update; absent fields are left unchanged.
// Parent and UserID sent as null or "" are cleared.
type UpdateMenuRequest struct {
	Name             *string              `json:"name" example:"Taipei cafes"`
	Link             *string              `json:"link" example:"/cafes"`
	MenuType         *string              `json:"menuType" binding:"omitempty,oneof=link filter" example:"link"`
	FilterProvince   *string              `json:"filterProvince"`
	FilterDistrict   *string              `json:"filterDistrict"`
	FilterCategories *[]string            `json:"filterCategories"`
	Parent           utils.NullableString `json:"parent" swaggertype:"string"`
	Order            *int                 `json:"order" example:"1"`
	IsGlobal         *bool                `json:"isGlobal"`
	UserID           utils.NullableString `json:"userId" swaggertype:"string"`
}

func (r *CreateMenuRequest) target() (models.MenuTarget, error) {
	menuType, ok := models.ParseMenuType(r.MenuType)
	if !ok {
		return nil, invalidMenuType()
	}
	return buildTarget(menuType, r.Link, r.FilterProvince, r.FilterDistrict, r.FilterCategories), nil
}

func (r *UpdateMenuRequest) touchesTarget() bool {
	return r.Link != nil || r.MenuType != nil || r.FilterProvince != nil ||
		r.FilterDistrict != nil || r.FilterCategories != nil
}

// mergedTarget overlays the supplied fields on the stored item
func (r *UpdateMenuRequest) mergedTarget(item *models.MenuItem) (models.MenuTarget, error) {
	menuType := item.MenuType
	if r.MenuType != nil {
		parsed, ok := models.ParseMenuType(*r.MenuType)
		if !ok {
			return nil, invalidMenuType()
		}
		menuType = parsed
	}

	link := item.Link
	if r.Link != nil {
		link = *r.Link
	} else if menuType == models.MenuTypeFilter && item.MenuType != models.MenuTypeFilter {
		link = ""
	}

	current := item.Target()
	province, district, categories := "", "", []string(nil)
	if filter, ok := current.(models.FilterTarget); ok {
		province, district, categories = filter.Province, filter.District, filter.Categories
	}
	if r.FilterProvince != nil {
		province = *r.FilterProvince
	}
	if r.FilterDistrict != nil {
		district = *r.FilterDistrict
	}
	if r.FilterCategories != nil {
		categories = *r.FilterCategories
	}

	return buildTarget(menuType, link, province, district, categories), nil
}

func buildTarget(menuType models.MenuType, link, province, district string, categories []string) models.MenuTarget {
	if menuType == models.MenuTypeFilter {
		cleaned := make([]string, 0, len(categories))
		for _, category := range categories {
			cleaned = append(cleaned, strings.TrimSpace(category))
		}
		return models.FilterTarget{
			Link:       strings.TrimSpace(link),
			Province:   strings.TrimSpace(province),
			District:   strings.TrimSpace(district),
			Categories: cleaned,
		}
	}
	return models.LinkTarget{Link: strings.TrimSpace(link)}
}

func invalidMenuType() error {
	return apperror.Validation(`Menu type must be either "link" or "filter"`,
		apperror.FieldError{Field: "menuType", Message: `must be either "link" or "filter"`})
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// menuService implements MenuService interface
type menuService struct {
	menuRepo   repository.MenuRepository
	visibility MenuVisibility
	guard      *MenuGuard
	logger     *logger.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(
	menuRepo repository.MenuRepository,
	visibility MenuVisibility,
	guard *MenuGuard,
	logger *logger.Logger,
) MenuService {
	return &menuService{
		menuRepo:   menuRepo,
		visibility: visibility,
		guard:      guard,
		logger:     logger,
	}
}

// GetMenuTree returns the nested menu visible to the caller
func (s *menuService) GetMenuTree(ctx context.Context, caller auth.Caller) ([]*response.MenuNode, error) {
	items, err := s.visibility.Resolve(ctx, caller)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", caller.UserID).Error("Failed to resolve visible menus")
		return nil, err
	}

	tree := AssembleMenuTree(items)

	if s.logger.IsDebug() {
		inTree := countNodes(tree)
		fields := map[string]interface{}{
			"user_id":    caller.UserID,
			"role":       caller.Role.String(),
			"flat_count": len(items),
			"root_count": len(tree),
			"tree_count": inTree,
		}
		s.logger.WithFields(fields).Debug("Menu tree assembled")
		if inTree != len(items) {
			s.logger.WithFields(fields).Warn("Menu tree node count differs from visible row count")
		}
	}

	return tree, nil
}

// GetAllMenus returns every stored item with parent and owner populated
func (s *menuService) GetAllMenus(ctx context.Context, isGlobal *bool) ([]response.MenuResponse, error) {
	items, err := s.menuRepo.FindWithRelations(ctx, isGlobal)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get menus")
		return nil, apperror.Store(err)
	}
	return response.NewMenuResponses(items), nil
}

// GetMenu returns one item with its parent name
func (s *menuService) GetMenu(ctx context.Context, id string) (*response.MenuResponse, error) {
	item, err := s.menuRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Menu not found")
	}

	resp := response.NewMenuResponse(item)
	return &resp, nil
}

// CreateMenu validates and stores a new item
func (s *menuService) CreateMenu(ctx context.Context, req *CreateMenuRequest) (*response.MenuResponse, error) {
	item, err := newMenuItem(ctx, s.guard, req)
	if err != nil {
		return nil, err
	}

	if !isBlank(req.UserID) {
		owner, err := s.guard.CheckOwner(ctx, *req.UserID)
		if err != nil {
			return nil, err
		}
		item.UserID = &owner
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		s.logger.WithError(err).WithField("name", item.Name).Error("Failed to create menu")
		return nil, apperror.Store(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"menu_id":   item.ID,
		"menu_type": item.MenuType,
		"is_global": item.IsGlobal,
	}).Info("Menu created successfully")

	return s.GetMenu(ctx, item.ID)
}

// newMenuItem runs the create checks shared by plain and user-specific creation
func newMenuItem(ctx context.Context, guard *MenuGuard, req *CreateMenuRequest) (*models.MenuItem, error) {
	name, err := guard.CheckName(req.Name)
	if err != nil {
		return nil, err
	}

	target, err := req.target()
	if err != nil {
		return nil, err
	}
	if err := guard.CheckTarget(target); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:     name,
		IsGlobal: true,
	}
	item.SetTarget(target)
	if req.Order != nil {
		item.SortOrder = *req.Order
	}
	if req.IsGlobal != nil {
		item.IsGlobal = *req.IsGlobal
	}

	if !isBlank(req.Parent) {
		parentID, err := guard.CheckParent(ctx, "", *req.Parent)
		if err != nil {
			return nil, err
		}
		item.ParentID = &parentID
	}

	return item, nil
}

// UpdateMenu applies a partial update after re-checking structure
func (s *menuService) UpdateMenu(ctx context.Context, id string, req *UpdateMenuRequest) (*response.MenuResponse, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Menu not found")
	}

	if req.Name != nil {
		name, err := s.guard.CheckName(*req.Name)
		if err != nil {
			return nil, err
		}
		item.Name = name
	}

	if req.touchesTarget() {
		target, err := req.mergedTarget(item)
		if err != nil {
			return nil, err
		}
		if err := s.guard.CheckTarget(target); err != nil {
			return nil, err
		}
		item.SetTarget(target)
	}

	if req.Order != nil {
		item.SortOrder = *req.Order
	}
	if req.IsGlobal != nil {
		item.IsGlobal = *req.IsGlobal
	}

	if req.Parent.Set {
		if req.Parent.IsClear() {
			item.ParentID = nil
		} else {
			parentID, err := s.guard.CheckParent(ctx, item.ID, *req.Parent.Value)
			if err != nil {
				return nil, err
			}
			item.ParentID = &parentID
		}
	}

	if req.UserID.Set {
		if req.UserID.IsClear() {
			item.UserID = nil
		} else {
			owner, err := s.guard.CheckOwner(ctx, *req.UserID.Value)
			if err != nil {
				return nil, err
			}
			item.UserID = &owner
		}
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		s.logger.WithError(err).WithField("menu_id", id).Error("Failed to update menu")
		return nil, apperror.Store(err)
	}

	s.logger.WithField("menu_id", id).Info("Menu updated successfully")
	return s.GetMenu(ctx, item.ID)
}

// DeleteMenu removes a childless item and its assignments
func (s *menuService) DeleteMenu(ctx context.Context, id string) error {
	if _, err := s.menuRepo.GetByID(ctx, id); err != nil {
		return lookupError(err, "Menu not found")
	}
	if err := s.guard.CheckDelete(ctx, id); err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrMenuHasChildren):
			return apperror.Wrap(err, apperror.HasChildren, "Cannot delete menu with submenus. Please delete submenus first.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperror.Wrap(err, apperror.NotFound, "Menu not found")
		}
		s.logger.WithError(err).WithField("menu_id", id).Error("Failed to delete menu")
		return apperror.Store(err)
	}

	s.logger.WithField("menu_id", id).Info("Menu deleted successfully")
	return nil
}

// AuditMenus scans stored rows for parent references that break the two-level structure
func (s *menuService) AuditMenus(ctx context.Context) (*response.MenuAuditReport, error) {
	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}

	byID := make(map[string]*models.MenuItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	report := &response.MenuAuditReport{
		ScannedMenus: len(items),
		Issues:       []response.MenuIssue{},
	}
	for i := range items {
		item := &items[i]
		if item.IsRoot() {
			continue
		}

		parentID := *item.ParentID
		issue := response.MenuIssue{MenuID: item.ID, MenuName: item.Name, ParentID: parentID}
		parent, ok := byID[parentID]
		switch {
		case parentID == item.ID:
			issue.Issue = IssueSelfParent
		case !ok:
			issue.Issue = IssueDanglingParent
		case !parent.IsRoot():
			issue.Issue = IssueDepthExceeded
		default:
			continue
		}
		report.Issues = append(report.Issues, issue)
	}

	return report, nil
}
