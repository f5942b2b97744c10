package service

import (
	"context"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
	"poi-be-svc/pkg/logger"
)

// UserMenuService manages which non-global menus each user is assigned
type UserMenuService interface {
	ListAssignableUsers(ctx context.Context) ([]response.AssignableUserResponse, error)
	GetUserAssignments(ctx context.Context, userID string) (*response.UserMenuAssignmentResponse, error)
	AssignToUser(ctx context.Context, userID string, menuIDs []string) ([]string, error)
	AssignGlobalToAllUsers(ctx context.Context, menuIDs []string) (*response.AssignGlobalResponse, error)
	CreateUserSpecificMenu(ctx context.Context, userID string, req *CreateMenuRequest) (*response.MenuResponse, error)
}

// AssignMenusRequest represents the request to replace a user's assignments
type AssignMenusRequest struct {
	MenuIDs []string `json:"menuIds" binding:"required,dive,objectid" example:"65a1f0c2a1b2c3d4e5f60718"`
}

// AssignGlobalRequest represents the request to assign global menus to every user
type AssignGlobalRequest struct {
	MenuIDs []string `json:"menuIds" binding:"required,min=1,dive,objectid" example:"65a1f0c2a1b2c3d4e5f60718"`
}

// userMenuService implements UserMenuService
type userMenuService struct {
	menuRepo     repository.MenuRepository
	userMenuRepo repository.UserMenuRepository
	userRepo     repository.UserRepository
	guard        *MenuGuard
	logger       *logger.Logger
}

// NewUserMenuService creates a new instance of UserMenuService
func NewUserMenuService(
	menuRepo repository.MenuRepository,
	userMenuRepo repository.UserMenuRepository,
	userRepo repository.UserRepository,
	guard *MenuGuard,
	logger *logger.Logger,
) UserMenuService {
	return &userMenuService{
		menuRepo:     menuRepo,
		userMenuRepo: userMenuRepo,
		userRepo:     userRepo,
		guard:        guard,
		logger:       logger,
	}
}

// ListAssignableUsers returns every user sorted by name
func (s *userMenuService) ListAssignableUsers(ctx context.Context) ([]response.AssignableUserResponse, error) {
	users, err := s.userRepo.ListOrderedByName(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users")
		return nil, apperror.Store(err)
	}

	result := make([]response.AssignableUserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, response.AssignableUserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role.String(),
		})
	}
	return result, nil
}

// GetUserAssignments returns the user's assigned ids and every menu that can be shown to them
func (s *userMenuService) GetUserAssignments(ctx context.Context, userID string) (*response.UserMenuAssignmentResponse, error) {
	userID, err := s.guard.CheckOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.userMenuRepo.MenuIDsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Store(err)
	}

	candidates, err := s.menuRepo.FindCandidatesWithParent(ctx, assigned)
	if err != nil {
		return nil, apperror.Store(err)
	}

	if assigned == nil {
		assigned = []string{}
	}
	return &response.UserMenuAssignmentResponse{
		AssignedMenuIDs: assigned,
		AllMenus:        response.NewMenuResponses(candidates),
	}, nil
}

// AssignToUser replaces the user's whole assignment set with menuIDs.
// A nil slice is rejected; an empty one clears every assignment.
func (s *userMenuService) AssignToUser(ctx context.Context, userID string, menuIDs []string) ([]string, error) {
	if menuIDs == nil {
		return nil, apperror.Validation("Menu IDs must be an array",
			apperror.FieldError{Field: "menuIds", Message: "menuIds is required"})
	}

	userID, err := s.guard.CheckOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids, err := normalizeMenuIDs(menuIDs)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadMenus(ctx, ids); err != nil {
		return nil, err
	}

	if err := s.userMenuRepo.ReplaceForUser(ctx, userID, ids); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to assign menus")
		return nil, apperror.Store(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":    userID,
		"menu_count": len(ids),
	}).Info("Menus assigned successfully")
	return ids, nil
}

// AssignGlobalToAllUsers gives every known user a fresh assignment to each global menu in menuIDs
func (s *userMenuService) AssignGlobalToAllUsers(ctx context.Context, menuIDs []string) (*response.AssignGlobalResponse, error) {
	if len(menuIDs) == 0 {
		return nil, apperror.Validation("Menu IDs must be a non-empty array",
			apperror.FieldError{Field: "menuIds", Message: "at least one menu ID is required"})
	}

	ids, err := normalizeMenuIDs(menuIDs)
	if err != nil {
		return nil, err
	}
	menus, err := s.loadMenus(ctx, ids)
	if err != nil {
		return nil, err
	}

	var notGlobal []string
	for _, id := range ids {
		if !menus[id].IsGlobal {
			notGlobal = append(notGlobal, id)
		}
	}
	if len(notGlobal) > 0 {
		return nil, apperror.Validation("Some menus are not global").WithIDs(notGlobal...)
	}

	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}

	count, err := s.userMenuRepo.ReassignToUsers(ctx, userIDs, ids)
	if err != nil {
		s.logger.WithError(err).Error("Failed to assign global menus")
		return nil, apperror.Store(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_count":       len(userIDs),
		"menu_count":       len(ids),
		"assignment_count": count,
	}).Infof("Menus assigned to %d users successfully", len(userIDs))

	return &response.AssignGlobalResponse{
		UserCount:       len(userIDs),
		MenuCount:       len(ids),
		AssignmentCount: count,
	}, nil
}

// CreateUserSpecificMenu creates a non-global item owned by the user and assigns it to them
func (s *userMenuService) CreateUserSpecificMenu(ctx context.Context, userID string, req *CreateMenuRequest) (*response.MenuResponse, error) {
	userID, err := s.guard.CheckOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := newMenuItem(ctx, s.guard, req)
	if err != nil {
		return nil, err
	}
	item.IsGlobal = false
	item.UserID = &userID

	if err := s.menuRepo.CreateForUser(ctx, item, userID); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to create user menu")
		return nil, apperror.Store(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"menu_id": item.ID,
	}).Info("User menu created successfully")

	created, err := s.menuRepo.GetByIDWithRelations(ctx, item.ID)
	if err != nil {
		return nil, lookupError(err, "Menu not found")
	}
	resp := response.NewMenuResponse(created)
	return &resp, nil
}

// loadMenus fetches ids and fails with the missing ones when any is absent
func (s *userMenuService) loadMenus(ctx context.Context, ids []string) (map[string]*models.MenuItem, error) {
	items, err := s.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Store(err)
	}

	found := make(map[string]*models.MenuItem, len(items))
	for i := range items {
		found[items[i].ID] = &items[i]
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.New(apperror.NotFound, "Some menus not found").WithIDs(missing...)
	}
	return found, nil
}

// normalizeMenuIDs lowercases and dedupes ids, keeping first occurrence order
func normalizeMenuIDs(menuIDs []string) ([]string, error) {
	ids := make([]string, 0, len(menuIDs))
	seen := make(map[string]bool, len(menuIDs))
	var invalid []string
	for _, raw := range menuIDs {
		id := models.NormalizeID(raw)
		if !models.IsValidID(id) {
			invalid = append(invalid, raw)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(invalid) > 0 {
		return nil, apperror.Validation("Invalid menu ID",
			apperror.FieldError{Field: "menuIds", Message: "Invalid menu ID"}).WithIDs(invalid...)
	}
	return ids, nil
}
