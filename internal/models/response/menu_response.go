package response

import (
	"time"

	"poi-be-svc/internal/models"
)

// ParentRef is the populated parent of a menu item
type ParentRef struct {
	ID   string `json:"id" example:"65a1f0c2a1b2c3d4e5f60718"`
	Name string `json:"name,omitempty" example:"Locations"`
}

// OwnerRef is the populated owner of a user-specific menu item
type OwnerRef struct {
	ID    string `json:"id" example:"65a1f0c2a1b2c3d4e5f60719"`
	Name  string `json:"name,omitempty" example:"Jane"`
	Email string `json:"email,omitempty" example:"jane@example.com"`
}

// MenuResponse represents a stored menu item with populated references
type MenuResponse struct {
	ID               string          `json:"id" example:"65a1f0c2a1b2c3d4e5f60720"`
	Name             string          `json:"name" example:"Taipei cafes"`
	MenuType         models.MenuType `json:"menuType" example:"filter"`
	Link             string          `json:"link" example:"/"`
	FilterProvince   *string         `json:"filterProvince,omitempty" example:"Taipei"`
	FilterDistrict   *string         `json:"filterDistrict,omitempty"`
	FilterCategories []string        `json:"filterCategories,omitempty"`
	Parent           *ParentRef      `json:"parent"`
	Order            int             `json:"order" example:"0"`
	IsGlobal         bool            `json:"isGlobal" example:"true"`
	UserID           *string         `json:"userId"`
	User             *OwnerRef       `json:"user,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// MenuNode is a menu item placed in the navigation tree
type MenuNode struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	MenuType         models.MenuType `json:"menuType"`
	Link             string          `json:"link"`
	FilterProvince   *string         `json:"filterProvince,omitempty"`
	FilterDistrict   *string         `json:"filterDistrict,omitempty"`
	FilterCategories []string        `json:"filterCategories,omitempty"`
	Parent           *string         `json:"parent"`
	Order            int             `json:"order"`
	IsGlobal         bool            `json:"isGlobal"`
	UserID           *string         `json:"userId"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Children         []*MenuNode     `json:"children"`
}

// NewMenuResponse converts a stored item, using preloaded Parent and User when present
func NewMenuResponse(item *models.MenuItem) MenuResponse {
	resp := MenuResponse{
		ID:               item.ID,
		Name:             item.Name,
		MenuType:         item.MenuType,
		Link:             item.Link,
		FilterProvince:   item.FilterProvince,
		FilterDistrict:   item.FilterDistrict,
		FilterCategories: append([]string(nil), item.FilterCategories...),
		Order:            item.SortOrder,
		IsGlobal:         item.IsGlobal,
		UserID:           item.UserID,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}

	if !item.IsRoot() {
		resp.Parent = &ParentRef{ID: *item.ParentID}
		if item.Parent != nil {
			resp.Parent.Name = item.Parent.Name
		}
	}
	if item.User != nil {
		resp.User = &OwnerRef{
			ID:    item.User.ID,
			Name:  item.User.Name,
			Email: item.User.Email,
		}
	}

	return resp
}

// NewMenuResponses converts a list of stored items
func NewMenuResponses(items []models.MenuItem) []MenuResponse {
	out := make([]MenuResponse, 0, len(items))
	for i := range items {
		out = append(out, NewMenuResponse(&items[i]))
	}
	return out
}

// NewMenuNode wraps an item with an empty children list
func NewMenuNode(item *models.MenuItem) *MenuNode {
	var parent *string
	if !item.IsRoot() {
		p := *item.ParentID
		parent = &p
	}

	return &MenuNode{
		ID:               item.ID,
		Name:             item.Name,
		MenuType:         item.MenuType,
		Link:             item.Link,
		FilterProvince:   item.FilterProvince,
		FilterDistrict:   item.FilterDistrict,
		FilterCategories: append([]string(nil), item.FilterCategories...),
		Parent:           parent,
		Order:            item.SortOrder,
		IsGlobal:         item.IsGlobal,
		UserID:           item.UserID,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
		Children:         []*MenuNode{},
	}
}
