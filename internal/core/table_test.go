package core

import (
	"reflect"
	"testing"
)

func TestSummaryTableLayout(t *testing.T) {
	s := Summarize([]ClassifiedRecord{
		classified("A", Bucket0to7),
		classified("B", Bucket16to30),
	})
	table := SummaryTable(s)

	wantCols := []string{
		"Sr No.", "Sub Division",
		"0 to 7 Days", "8 to 15 Days", "16 to 30 Days", "31 to 45 Days", "More than 45 Days",
		"TOTAL",
	}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Fatalf("columns = %v", table.Columns)
	}
	if table.Name != "Summary" {
		t.Errorf("name = %q", table.Name)
	}
	// Two division rows plus the grand total.
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	last := table.Rows[len(table.Rows)-1]
	if last[0] != 0 || last[1] != GrandTotalLabel {
		t.Fatalf("last row = %v, want grand total with SrNo 0", last)
	}
	for _, row := range table.Rows {
		if len(row) != len(wantCols) {
			t.Errorf("row %v has %d cells, want %d", row, len(row), len(wantCols))
		}
	}
}

func TestSummaryTableEmptyStillHasGrandTotal(t *testing.T) {
	table := SummaryTable(Summarize(nil))
	if len(table.Rows) != 1 {
		t.Fatalf("expected only the grand total row, got %d rows", len(table.Rows))
	}
	row := table.Rows[0]
	if row[1] != GrandTotalLabel {
		t.Fatalf("row = %v", row)
	}
	for _, cell := range row[2:] {
		if cell != 0 {
			t.Errorf("expected zero cell, got %v in %v", cell, row)
		}
	}
}

func TestDetailTableSortAndFormat(t *testing.T) {
	records := []ClassifiedRecord{
		{
			Record: Record{
				InstallationDate: NewDate(2024, 1, 5),
				ApplicationNo:    "A2",
				ConsumerNo:       "C2",
				SubDivision:      "North",
			},
			DaysPending: 4,
			Bucket:      Bucket0to7,
		},
		{
			Record: Record{
				InstallationDate: NewDate(2023, 11, 1),
				ApplicationNo:    "A1",
				ConsumerNo:       "C1",
				SubDivision:      "South",
			},
			DaysPending: 69,
			Bucket:      BucketOver45,
		},
	}
	table := DetailTable(records)

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	// Oldest first.
	first := table.Rows[0]
	if first[0] != 1 || first[2] != "A1" || first[5] != 69 {
		t.Fatalf("first row = %v", first)
	}
	if first[1] != "01-11-2023" {
		t.Errorf("date cell = %v, want day-month-year text", first[1])
	}
	if first[6] != "More than 45 Days" {
		t.Errorf("bucket cell = %v", first[6])
	}
	second := table.Rows[1]
	if second[0] != 2 || second[2] != "A2" {
		t.Fatalf("second row = %v", second)
	}
	// Input order preserved.
	if records[0].ApplicationNo != "A2" {
		t.Fatalf("input slice mutated: %v", records)
	}
}

func TestDetailTableStableOnTies(t *testing.T) {
	mk := func(app string) ClassifiedRecord {
		return ClassifiedRecord{
			Record:      Record{InstallationDate: NewDate(2024, 1, 1), ApplicationNo: app},
			DaysPending: 10,
			Bucket:      Bucket8to15,
		}
	}
	table := DetailTable([]ClassifiedRecord{mk("first"), mk("second"), mk("third")})
	want := []string{"first", "second", "third"}
	for i, row := range table.Rows {
		if row[2] != want[i] {
			t.Fatalf("row %d application = %v, want %q", i, row[2], want[i])
		}
	}
}

func TestDetailTableEmpty(t *testing.T) {
	table := DetailTable(nil)
	if len(table.Rows) != 0 {
		t.Fatalf("expected empty detail table, got %d rows", len(table.Rows))
	}
	if len(table.Columns) != 7 {
		t.Fatalf("columns = %v", table.Columns)
	}
}
