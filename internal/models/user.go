package models

import (
	"time"

	"gorm.io/gorm"

	"poi-be-svc/internal/auth"
)

// User represents the users table
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Email     string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Role      auth.Role `json:"role" gorm:"column:role;type:varchar(16);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an identifier and the default role
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.Role == "" {
		u.Role = auth.RoleUser
	}
	return nil
}
