package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"poi-be-svc/internal/models"
)

// ErrMenuHasChildren is returned by Delete when child rows still reference the item
var ErrMenuHasChildren = errors.New("menu has children")

const menuOrdering = "sort_order ASC, created_at ASC, id ASC"

// MenuRepository interface defines menu repository methods
type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	CreateForUser(ctx context.Context, item *models.MenuItem, userID string) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	GetByIDWithRelations(ctx context.Context, id string) (*models.MenuItem, error)
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindVisible(ctx context.Context, assignedIDs []string) ([]models.MenuItem, error)
	FindWithRelations(ctx context.Context, isGlobal *bool) ([]models.MenuItem, error)
	FindCandidatesWithParent(ctx context.Context, assignedIDs []string) ([]models.MenuItem, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error)
	CountChildren(ctx context.Context, id string) (int64, error)
}

// menuRepository implements MenuRepository interface
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func preloadParentName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func preloadOwner(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// Create inserts a menu item
func (r *menuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateForUser inserts a menu item and its single assignment atomically
func (r *menuRepository) CreateForUser(ctx context.Context, item *models.MenuItem, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserMenu{
			ID:     models.NewID(),
			UserID: userID,
			MenuID: item.ID,
		}).Error
	})
}

// Update saves every column of the item
func (r *menuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Omit("Parent", "User").Save(item).Error
}

// Delete removes a childless item together with its assignments
func (r *menuRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var children int64
		if err := tx.Model(&models.MenuItem{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return ErrMenuHasChildren
		}

		if err := tx.Where("menu_id = ?", id).Delete(&models.UserMenu{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.MenuItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByID gets a menu item without relations
func (r *menuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDWithRelations gets a menu item with its parent name populated
func (r *menuRepository) GetByIDWithRelations(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Parent", preloadParentName).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll gets every menu item in display order
func (r *menuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Order(menuOrdering).Find(&items).Error
	return items, err
}

// FindVisible gets global items plus the given assigned ids in display order
func (r *menuRepository) FindVisible(ctx context.Context, assignedIDs []string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := r.db.WithContext(ctx).Where("is_global = ?", true)
	if len(assignedIDs) > 0 {
		query = query.Or("id IN ?", assignedIDs)
	}
	err := query.Order(menuOrdering).Find(&items).Error
	return items, err
}

// FindWithRelations gets items with parent and owner populated, optionally filtered by global flag
func (r *menuRepository) FindWithRelations(ctx context.Context, isGlobal *bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := r.db.WithContext(ctx).
		Preload("Parent", preloadParentName).
		Preload("User", preloadOwner)
	if isGlobal != nil {
		query = query.Where("is_global = ?", *isGlobal)
	}
	err := query.Order(menuOrdering).Find(&items).Error
	return items, err
}

// FindCandidatesWithParent gets global items plus assigned ids, with parent names populated
func (r *menuRepository) FindCandidatesWithParent(ctx context.Context, assignedIDs []string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := r.db.WithContext(ctx).
		Preload("Parent", preloadParentName).
		Where("is_global = ?", true)
	if len(assignedIDs) > 0 {
		query = query.Or("id IN ?", assignedIDs)
	}
	err := query.Order(menuOrdering).Find(&items).Error
	return items, err
}

// FindByIDs gets the items among ids that exist
func (r *menuRepository) FindByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// CountChildren counts items whose parent is id
func (r *menuRepository) CountChildren(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}
