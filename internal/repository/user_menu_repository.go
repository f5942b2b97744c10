package repository

import (
	"context"

	"gorm.io/gorm"

	"poi-be-svc/internal/models"
)

const assignmentBatchSize = 100

// UserMenuRepository defines the interface for menu assignment data operations
type UserMenuRepository interface {
	MenuIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]models.UserMenu, error)
	ReplaceForUser(ctx context.Context, userID string, menuIDs []string) error
	ReassignToUsers(ctx context.Context, userIDs []string, menuIDs []string) (int, error)
}

// userMenuRepository implements UserMenuRepository
type userMenuRepository struct {
	db *gorm.DB
}

// NewUserMenuRepository creates a new instance of UserMenuRepository
func NewUserMenuRepository(db *gorm.DB) UserMenuRepository {
	return &userMenuRepository{db: db}
}

// MenuIDsByUser gets the menu ids assigned to a user, oldest assignment first
func (r *userMenuRepository) MenuIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.UserMenu{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Pluck("menu_id", &ids).Error
	return ids, err
}

// ListByUser gets the assignment rows of a user
func (r *userMenuRepository) ListByUser(ctx context.Context, userID string) ([]models.UserMenu, error) {
	var rows []models.UserMenu
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&rows).Error
	return rows, err
}

// ReplaceForUser swaps the user's whole assignment set in one transaction
func (r *userMenuRepository) ReplaceForUser(ctx context.Context, userID string, menuIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserMenu{}).Error; err != nil {
			return err
		}

		rows := make([]*models.UserMenu, 0, len(menuIDs))
		for _, menuID := range menuIDs {
			rows = append(rows, &models.UserMenu{ID: models.NewID(), UserID: userID, MenuID: menuID})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, assignmentBatchSize).Error
	})
}

// ReassignToUsers deletes then re-inserts every (user, menu) pair in one transaction
func (r *userMenuRepository) ReassignToUsers(ctx context.Context, userIDs []string, menuIDs []string) (int, error) {
	rows := make([]*models.UserMenu, 0, len(userIDs)*len(menuIDs))
	for _, userID := range userIDs {
		for _, menuID := range menuIDs {
			rows = append(rows, &models.UserMenu{ID: models.NewID(), UserID: userID, MenuID: menuID})
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id IN ? AND user_id IN ?", menuIDs, userIDs).Delete(&models.UserMenu{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(rows, assignmentBatchSize).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
