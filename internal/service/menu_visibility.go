package service

import (
	"context"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/models"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
)

// MenuVisibility resolves which stored menu items a caller may see
type MenuVisibility interface {
	Resolve(ctx context.Context, caller auth.Caller) ([]models.MenuItem, error)
}

type menuVisibility struct {
	menuRepo     repository.MenuRepository
	userMenuRepo repository.UserMenuRepository
}

// NewMenuVisibility creates a visibility resolver
func NewMenuVisibility(menuRepo repository.MenuRepository, userMenuRepo repository.UserMenuRepository) MenuVisibility {
	return &menuVisibility{
		menuRepo:     menuRepo,
		userMenuRepo: userMenuRepo,
	}
}

// Resolve returns visible items in display order. Admins see everything,
// everyone else sees global items plus the items assigned to them.
func (v *menuVisibility) Resolve(ctx context.Context, caller auth.Caller) ([]models.MenuItem, error) {
	if caller.IsAdmin() {
		items, err := v.menuRepo.FindAll(ctx)
		if err != nil {
			return nil, apperror.Store(err)
		}
		return items, nil
	}

	var assigned []string
	if caller.IsAuthenticated() {
		ids, err := v.userMenuRepo.MenuIDsByUser(ctx, caller.UserID)
		if err != nil {
			return nil, apperror.Store(err)
		}
		assigned = ids
	}

	items, err := v.menuRepo.FindVisible(ctx, assigned)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return items, nil
}
