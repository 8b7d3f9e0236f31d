// Package export renders prospection rows as downloadable documents.
package export

import (
	"fmt"
	"io"

	"github.com/terraincognita07/prospecta/internal/services"
	"github.com/xuri/excelize/v2"
)

const ProspectionsSheet = "Prospections"

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteProspectionsXLSX writes a single-sheet workbook: a bold header row then
// one row per prospection.
func WriteProspectionsXLSX(w io.Writer, rows []services.ProspectionExportRow) (err error) {
	workbook := excelize.NewFile()
	defer func() {
		if closeErr := workbook.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := workbook.SetSheetName("Sheet1", ProspectionsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeSheetRow(workbook, 1, services.ProspectionExportHeaders); err != nil {
		return err
	}
	headerStyle, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(services.ProspectionExportHeaders), 1)
	if err != nil {
		return err
	}
	if err := workbook.SetCellStyle(ProspectionsSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header row: %w", err)
	}

	for index, row := range rows {
		if err := writeSheetRow(workbook, index+2, row.Columns()); err != nil {
			return err
		}
	}

	if err := workbook.SetColWidth(ProspectionsSheet, "A", "H", 22); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := workbook.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheetRow(workbook *excelize.File, rowNumber int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	cells := make([]interface{}, 0, len(values))
	for _, value := range values {
		cells = append(cells, value)
	}
	if err := workbook.SetSheetRow(ProspectionsSheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNumber, err)
	}
	return nil
}
