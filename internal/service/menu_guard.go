package service

import (
	"context"
	"strings"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
)

// MenuGuard checks structural menu rules against stored state before a write
type MenuGuard struct {
	menuRepo repository.MenuRepository
	userRepo repository.UserRepository
}

// NewMenuGuard creates a new menu guard
func NewMenuGuard(menuRepo repository.MenuRepository, userRepo repository.UserRepository) *MenuGuard {
	return &MenuGuard{
		menuRepo: menuRepo,
		userRepo: userRepo,
	}
}

// CheckName returns the trimmed name or a validation error when it is blank
func (g *MenuGuard) CheckName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperror.Validation("Menu name is required",
			apperror.FieldError{Field: "name", Message: "name is required"})
	}
	return trimmed, nil
}

// CheckTarget validates the link or filter fields of an item
func (g *MenuGuard) CheckTarget(target models.MenuTarget) error {
	return target.Validate()
}

// CheckParent validates parentID as the parent of selfID and returns the normalized id.
// selfID is empty on create. The parent must exist and be a root; on update the
// item may not be its own parent and may not have children of its own.
func (g *MenuGuard) CheckParent(ctx context.Context, selfID, parentID string) (string, error) {
	id := models.NormalizeID(parentID)
	if !models.IsValidID(id) {
		return "", apperror.Validation("Invalid parent menu ID",
			apperror.FieldError{Field: "parent", Message: "Invalid parent menu ID"})
	}
	if selfID != "" && id == selfID {
		return "", apperror.New(apperror.SelfReference, "Cannot set menu as its own parent")
	}

	parent, err := g.menuRepo.GetByID(ctx, id)
	if err != nil {
		return "", lookupError(err, "Parent menu not found")
	}
	if !parent.IsRoot() {
		return "", apperror.New(apperror.DepthExceeded, "Cannot nest more than 2 levels")
	}

	if selfID != "" {
		children, err := g.menuRepo.CountChildren(ctx, selfID)
		if err != nil {
			return "", apperror.Store(err)
		}
		if children > 0 {
			return "", apperror.New(apperror.DepthExceeded, "Cannot nest a menu that has submenus")
		}
	}

	return id, nil
}

// CheckOwner verifies the user exists and returns the normalized id
func (g *MenuGuard) CheckOwner(ctx context.Context, userID string) (string, error) {
	id := models.NormalizeID(userID)
	if !models.IsValidID(id) {
		return "", apperror.Validation("Invalid user ID",
			apperror.FieldError{Field: "userId", Message: "Invalid user ID"})
	}
	if _, err := g.userRepo.GetByID(ctx, id); err != nil {
		return "", lookupError(err, "User not found")
	}
	return id, nil
}

// CheckDelete rejects deleting an item that still has children
func (g *MenuGuard) CheckDelete(ctx context.Context, id string) error {
	children, err := g.menuRepo.CountChildren(ctx, id)
	if err != nil {
		return apperror.Store(err)
	}
	if children > 0 {
		return apperror.New(apperror.HasChildren, "Cannot delete menu with submenus. Please delete submenus first.")
	}
	return nil
}
