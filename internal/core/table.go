package core

import "sort"

// Table is a named, serializable view of report data. It is what the
// templates render, the exporter writes and the publisher pushes; none of
// them mutate it.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// SummaryTable renders a Summary into its export layout: sequence number,
// sub-division, one column per bucket in display order, then TOTAL, with
// the grand-total row last.
func SummaryTable(s Summary) Table {
	t := Table{
		Name:    "Summary",
		Columns: append([]string{"Sr No.", "Sub Division"}, append(BucketLabels(), "TOTAL")...),
	}
	row := func(r SummaryRow) []any {
		cells := make([]any, 0, len(t.Columns))
		cells = append(cells, r.SrNo, r.SubDivision)
		for _, c := range r.Counts {
			cells = append(cells, c)
		}
		return append(cells, r.Total)
	}
	for _, r := range s.Rows {
		t.Rows = append(t.Rows, row(r))
	}
	t.Rows = append(t.Rows, row(s.GrandTotal))
	return t
}

// DetailTable renders classified records sorted by days pending, oldest
// first. The sort is stable so ties keep their upload order. Sequence
// numbers are assigned after sorting; dates are rendered day-month-year.
func DetailTable(records []ClassifiedRecord) Table {
	sorted := make([]ClassifiedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DaysPending > sorted[j].DaysPending
	})

	t := Table{
		Name: "Detail",
		Columns: []string{
			"Sr No.", "Installation Date", "Application Number",
			"Consumer Number", "Sub Division", "Pending (Days)", "Age Bucket",
		},
	}
	for i, r := range sorted {
		t.Rows = append(t.Rows, []any{
			i + 1,
			r.InstallationDate.Format(DateLayout),
			r.ApplicationNo,
			r.ConsumerNo,
			r.SubDivision,
			r.DaysPending,
			r.Bucket.String(),
		})
	}
	return t
}
