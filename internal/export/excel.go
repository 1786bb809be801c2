package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet written by Excel exports.
const sheetName = "Timesheet"

// WriteXLSX writes the table as an Excel workbook with one worksheet,
// a bold header row, and columns sized to their widest content.
func (t Table) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default worksheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for col, name := range t.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header cell %s: %w", cell, err)
		}
	}

	for i, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}

	// Auto-fit columns to the widest content, with a little padding,
	// the way the original spreadsheet export sizes them.
	for col, name := range t.Header {
		width := len(name)
		for _, row := range t.Rows {
			if col < len(row) && len(row[col]) > width {
				width = len(row[col])
			}
		}
		letter, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("naming column: %w", err)
		}
		if err := f.SetColWidth(sheetName, letter, letter, float64(width+5)); err != nil {
			return fmt.Errorf("sizing column %s: %w", letter, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
