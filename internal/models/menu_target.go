package models

import (
	"strings"

	"poi-be-svc/pkg/apperror"
)

// MenuType discriminates the two kinds of menu entries
type MenuType string

const (
	MenuTypeLink   MenuType = "link"
	MenuTypeFilter MenuType = "filter"
)

// DefaultFilterLink is the base path a filter entry renders against
const DefaultFilterLink = "/"

// ParseMenuType returns the menu type for value; empty means link
func ParseMenuType(value string) (MenuType, bool) {
	switch MenuType(strings.TrimSpace(value)) {
	case "", MenuTypeLink:
		return MenuTypeLink, true
	case MenuTypeFilter:
		return MenuTypeFilter, true
	default:
		return "", false
	}
}

// MenuTarget is where a menu entry leads. Implemented by LinkTarget and FilterTarget.
type MenuTarget interface {
	Type() MenuType
	Href() string
	Validate() error
}

// LinkTarget points at a fixed path
type LinkTarget struct {
	Link string
}

func (LinkTarget) Type() MenuType { return MenuTypeLink }

func (t LinkTarget) Href() string { return t.Link }

func (t LinkTarget) Validate() error {
	if strings.TrimSpace(t.Link) == "" {
		return apperror.Validation("Link is required for link menu type",
			apperror.FieldError{Field: "link", Message: "link is required"})
	}
	return nil
}

// FilterTarget points at a location listing filtered by province, district or categories
type FilterTarget struct {
	Link       string
	Province   string
	District   string
	Categories []string
}

func (FilterTarget) Type() MenuType { return MenuTypeFilter }

func (t FilterTarget) Href() string {
	if strings.TrimSpace(t.Link) == "" {
		return DefaultFilterLink
	}
	return t.Link
}

func (t FilterTarget) Validate() error {
	if t.Province == "" && t.District == "" && len(t.Categories) == 0 {
		return apperror.Validation("At least one filter (province, district, or category) is required for filter menu type",
			apperror.FieldError{Field: "filterProvince", Message: "one of filterProvince, filterDistrict, filterCategories is required"})
	}

	var fields []apperror.FieldError
	for _, id := range t.Categories {
		if !IsValidID(id) {
			fields = append(fields, apperror.FieldError{Field: "filterCategories", Message: "Invalid category ID: " + id})
		}
	}
	if len(fields) > 0 {
		return apperror.Validation("Invalid category ID", fields...)
	}
	return nil
}
