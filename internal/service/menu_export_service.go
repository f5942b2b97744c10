package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/apperror"
	"poi-be-svc/pkg/logger"
)

const menuExportSheet = "Menus"

var menuExportHeaders = []string{
	"No", "Name", "Type", "Link", "Province", "District", "Categories",
	"Parent", "Order", "Global", "Owner", "Created At",
}

// MenuExportService renders stored menus as a spreadsheet
type MenuExportService interface {
	ExportMenusToExcel(ctx context.Context) ([]byte, string, error)
}

type menuExportService struct {
	menuRepo repository.MenuRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewMenuExportService creates a new menu export service
func NewMenuExportService(menuRepo repository.MenuRepository, logger *logger.Logger) MenuExportService {
	return &menuExportService{
		menuRepo: menuRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// ExportMenusToExcel writes every menu item to an xlsx workbook and returns it with a file name
func (s *menuExportService) ExportMenusToExcel(ctx context.Context) ([]byte, string, error) {
	items, err := s.menuRepo.FindWithRelations(ctx, nil)
	if err != nil {
		return nil, "", apperror.Store(err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	index, err := f.NewSheet(menuExportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range menuExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(menuExportSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(menuExportHeaders))
		f.SetCellStyle(menuExportSheet, "A1", lastCol+"1", headerStyle)
	}

	for i := range items {
		item := &items[i]
		row := i + 2

		parent, owner := "", ""
		if item.Parent != nil {
			parent = item.Parent.Name
		} else if item.ParentID != nil {
			parent = *item.ParentID
		}
		if item.User != nil {
			owner = item.User.Email
		}

		province, district := "", ""
		if filter, ok := item.Target().(models.FilterTarget); ok {
			province, district = filter.Province, filter.District
		}

		values := []interface{}{
			i + 1,
			item.Name,
			string(item.MenuType),
			item.Link,
			province,
			district,
			strings.Join(item.FilterCategories, ", "),
			parent,
			item.SortOrder,
			item.IsGlobal,
			owner,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(menuExportSheet, cell, value)
		}
	}

	for i := 1; i <= len(menuExportHeaders); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(menuExportSheet, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	filename := fmt.Sprintf("menu_export_%s.xlsx", s.now().Format("20060102_150405"))

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"rows":     len(items),
		"filename": filename,
	}).Info("Menu export generated")

	return buffer.Bytes(), filename, nil
}
