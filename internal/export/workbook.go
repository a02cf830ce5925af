// Package export serializes report tables to spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pendingboard/internal/core"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook serializes a table to xlsx bytes: one sheet named after the
// table, header row first, no index column. Every call produces a fresh,
// self-contained artifact; the table is not mutated.
func Workbook(table core.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Name
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("name sheet %q: %w", sheet, err)
		}
	}

	for c, name := range table.Columns {
		ref, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", c, err)
		}
		if err := f.SetCellValue(sheet, ref, name); err != nil {
			return nil, fmt.Errorf("write header %q: %w", name, err)
		}
	}
	for r, row := range table.Rows {
		for c, v := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", r, c, err)
			}
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				return nil, fmt.Errorf("write cell %s: %w", ref, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
