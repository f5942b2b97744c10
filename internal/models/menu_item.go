package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MenuItem represents the menu_items table
type MenuItem struct {
	ID               string                      `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Name             string                      `json:"name" gorm:"column:name;not null"`
	MenuType         MenuType                    `json:"menuType" gorm:"column:menu_type;type:varchar(16);not null"`
	Link             string                      `json:"link" gorm:"column:link;not null"`
	FilterProvince   *string                     `json:"filterProvince,omitempty" gorm:"column:filter_province"`
	FilterDistrict   *string                     `json:"filterDistrict,omitempty" gorm:"column:filter_district"`
	FilterCategories datatypes.JSONSlice[string] `json:"filterCategories,omitempty" gorm:"column:filter_categories"`
	ParentID         *string                     `json:"parent" gorm:"column:parent_id;type:varchar(24);index:idx_menu_items_parent_order,priority:1"`
	SortOrder        int                         `json:"order" gorm:"column:sort_order;not null;index:idx_menu_items_parent_order,priority:2"`
	IsGlobal         bool                        `json:"isGlobal" gorm:"column:is_global;not null;index"`
	UserID           *string                     `json:"userId" gorm:"column:user_id;type:varchar(24);index"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`

	// Relationships
	Parent *MenuItem `json:"-" gorm:"foreignKey:ParentID"`
	User   *User     `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the insert table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}

// BeforeCreate assigns an identifier when none was set
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// IsRoot reports whether the item has no parent
func (m *MenuItem) IsRoot() bool {
	return m.ParentID == nil || *m.ParentID == ""
}

// Target returns the variant view of the item
func (m *MenuItem) Target() MenuTarget {
	if m.MenuType == MenuTypeFilter {
		return FilterTarget{
			Link:       m.Link,
			Province:   derefString(m.FilterProvince),
			District:   derefString(m.FilterDistrict),
			Categories: append([]string(nil), m.FilterCategories...),
		}
	}
	return LinkTarget{Link: m.Link}
}

// SetTarget stores a variant on the flat row, clearing fields the variant does not use
func (m *MenuItem) SetTarget(target MenuTarget) {
	switch t := target.(type) {
	case FilterTarget:
		m.MenuType = MenuTypeFilter
		m.Link = t.Href()
		m.FilterProvince = optionalString(t.Province)
		m.FilterDistrict = optionalString(t.District)
		if len(t.Categories) > 0 {
			m.FilterCategories = datatypes.JSONSlice[string](append([]string(nil), t.Categories...))
		} else {
			m.FilterCategories = nil
		}
	case LinkTarget:
		m.MenuType = MenuTypeLink
		m.Link = t.Link
		m.FilterProvince = nil
		m.FilterDistrict = nil
		m.FilterCategories = nil
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
