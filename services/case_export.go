package services

import (
	"bytes"
	"fmt"
	"law_link_app_go/models"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportClientCases builds an Excel workbook listing every case owned by the
// client, one row per case with its recruitment totals.
func ExportClientCases(dbConn *gorm.DB, clientID string) (*bytes.Buffer, error) {
	var cases []models.Case
	err := dbConn.Where("client_id = ?", clientID).
		Preload("Invitations").
		Preload("Applications").
		Preload("Specialty").
		Order("created_at ASC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Cases"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Title",        // A
		"Status",       // B
		"Specialty",    // C
		"Lawyer",       // D
		"Invitations",  // E
		"Applications", // F
		"Opened",       // G
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "B", "G", 16)

	for i, kase := range cases {
		row := i + 2

		specialty := ""
		if kase.Specialty != nil {
			specialty = kase.Specialty.Name
		}
		lawyer := ""
		if kase.AssignedLawyerID != nil {
			lawyer = *kase.AssignedLawyerID
		}

		values := []interface{}{
			kase.Title,
			kase.Status,
			specialty,
			lawyer,
			len(kase.Invitations),
			len(kase.Applications),
			kase.CreatedAt.Format(time.DateOnly),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
