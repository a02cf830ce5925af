package core

import "sort"

// SummaryRow is one line of the sub-division × bucket cross-tabulation.
// Counts follows the bucket display order; Total is the row-wise sum.
type SummaryRow struct {
	SrNo        int
	SubDivision string
	Counts      [NumBuckets]int
	Total       int
}

// Summary is the full cross-tabulation plus its synthetic grand-total row.
type Summary struct {
	Rows       []SummaryRow
	GrandTotal SummaryRow
}

// GrandTotalLabel is the sub-division label of the synthetic total row.
const GrandTotalLabel = "Grand Total"

// Summarize cross-tabulates the records by sub-division and bucket.
// Rows are ordered alphabetically by sub-division with 1-based sequence
// numbers; the grand-total row carries sequence number 0. Buckets with no
// matching records show an explicit zero. Zero records yield zero rows and
// an all-zero grand total.
func Summarize(records []ClassifiedRecord) Summary {
	byDivision := map[string]*SummaryRow{}
	for _, r := range records {
		row, ok := byDivision[r.SubDivision]
		if !ok {
			row = &SummaryRow{SubDivision: r.SubDivision}
			byDivision[r.SubDivision] = row
		}
		row.Counts[r.Bucket]++
		row.Total++
	}

	names := make([]string, 0, len(byDivision))
	for name := range byDivision {
		names = append(names, name)
	}
	sort.Strings(names)

	s := Summary{
		Rows:       make([]SummaryRow, 0, len(names)),
		GrandTotal: SummaryRow{SrNo: 0, SubDivision: GrandTotalLabel},
	}
	for i, name := range names {
		row := *byDivision[name]
		row.SrNo = i + 1
		s.Rows = append(s.Rows, row)
		for b := range row.Counts {
			s.GrandTotal.Counts[b] += row.Counts[b]
		}
		s.GrandTotal.Total += row.Total
	}
	return s
}

// BucketOverview holds the KPI card numbers for a (filtered) record set.
type BucketOverview struct {
	Total   int
	Buckets [NumBuckets]int
}

// Overview counts the records per bucket for the KPI cards.
func Overview(records []ClassifiedRecord) BucketOverview {
	var ov BucketOverview
	ov.Total = len(records)
	for _, r := range records {
		ov.Buckets[r.Bucket]++
	}
	return ov
}
