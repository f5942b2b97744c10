package models

import (
	"time"

	"gorm.io/gorm"
)

// UserMenu represents the user_menus table, one row per (user, menu) assignment
type UserMenu struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(24)"`
	UserID    string    `json:"user" gorm:"column:user_id;type:varchar(24);not null;uniqueIndex:idx_user_menus_user_menu,priority:1"`
	MenuID    string    `json:"menu" gorm:"column:menu_id;type:varchar(24);not null;uniqueIndex:idx_user_menus_user_menu,priority:2;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for UserMenu
func (UserMenu) TableName() string {
	return "user_menus"
}

// BeforeCreate assigns an identifier when none was set
func (u *UserMenu) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
