// Package ingest parses uploaded workbooks into installation records.
package ingest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pendingboard/internal/core"
)

// Uploads carry no header row; columns are addressed positionally.
const (
	colInstallationDate = 0
	colApplicationNo    = 1
	colConsumerNo       = 2
	colSubDivision      = 5
)

// dateLayouts accepted for the installation date cell. Day-month-year text,
// zero-padded or not.
var dateLayouts = []string{core.DateLayout, "2-1-2006"}

// Stats describes what happened to the rows of one upload.
type Stats struct {
	TotalRows int
	Loaded    int
	Dropped   int
}

// Parse reads the first sheet of an xlsx stream into records. Rows whose
// date cell is empty or not day-month-year text are dropped, not reported:
// malformed dates are a pre-filter, never a fatal error. A workbook with no
// usable rows is a valid, empty result.
func Parse(r io.Reader) ([]core.Record, Stats, error) {
	var stats Stats

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, stats, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, stats, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, stats, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	records := make([]core.Record, 0, len(rows))
	for _, row := range rows {
		stats.TotalRows++
		installed, ok := parseDate(cell(row, colInstallationDate))
		if !ok {
			stats.Dropped++
			continue
		}
		records = append(records, core.Record{
			InstallationDate: installed,
			ApplicationNo:    cell(row, colApplicationNo),
			ConsumerNo:       cell(row, colConsumerNo),
			SubDivision:      cell(row, colSubDivision),
		})
		stats.Loaded++
	}
	return records, stats, nil
}

// cell returns the trimmed value at index i, or "" when the row is short.
// Trailing empty cells are not present in the rows excelize returns.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
