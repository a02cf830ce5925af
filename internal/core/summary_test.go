package core

import "testing"

func classified(sd string, b Bucket) ClassifiedRecord {
	days := map[Bucket]int{
		Bucket0to7:   3,
		Bucket8to15:  10,
		Bucket16to30: 20,
		Bucket31to45: 40,
		BucketOver45: 60,
	}[b]
	return ClassifiedRecord{
		Record:      Record{SubDivision: sd},
		DaysPending: days,
		Bucket:      b,
	}
}

func TestSummarizeWorkedExample(t *testing.T) {
	// A: buckets {0-7, 16-30}; B: {0-7}.
	records := []ClassifiedRecord{
		classified("A", Bucket0to7),
		classified("A", Bucket16to30),
		classified("B", Bucket0to7),
	}
	s := Summarize(records)

	if len(s.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(s.Rows))
	}

	a := s.Rows[0]
	if a.SubDivision != "A" || a.SrNo != 1 {
		t.Fatalf("first row = %+v, want A with SrNo 1", a)
	}
	if a.Counts != [NumBuckets]int{1, 0, 1, 0, 0} || a.Total != 2 {
		t.Errorf("row A counts = %v total = %d", a.Counts, a.Total)
	}

	b := s.Rows[1]
	if b.SubDivision != "B" || b.SrNo != 2 {
		t.Fatalf("second row = %+v, want B with SrNo 2", b)
	}
	if b.Counts != [NumBuckets]int{1, 0, 0, 0, 0} || b.Total != 1 {
		t.Errorf("row B counts = %v total = %d", b.Counts, b.Total)
	}

	gt := s.GrandTotal
	if gt.SrNo != 0 || gt.SubDivision != GrandTotalLabel {
		t.Fatalf("grand total row = %+v", gt)
	}
	if gt.Counts != [NumBuckets]int{2, 0, 1, 0, 0} || gt.Total != 3 {
		t.Errorf("grand total counts = %v total = %d", gt.Counts, gt.Total)
	}
}

func TestSummarizeInvariants(t *testing.T) {
	records := []ClassifiedRecord{
		classified("West", Bucket8to15),
		classified("West", Bucket8to15),
		classified("East", BucketOver45),
		classified("Central", Bucket31to45),
		classified("East", Bucket0to7),
	}
	s := Summarize(records)

	var colSums [NumBuckets]int
	grand := 0
	for _, row := range s.Rows {
		rowSum := 0
		for b, c := range row.Counts {
			rowSum += c
			colSums[b] += c
		}
		if rowSum != row.Total {
			t.Errorf("row %q: total %d != bucket sum %d", row.SubDivision, row.Total, rowSum)
		}
		grand += row.Total
	}
	if s.GrandTotal.Counts != colSums {
		t.Errorf("grand total counts = %v, want %v", s.GrandTotal.Counts, colSums)
	}
	if s.GrandTotal.Total != grand {
		t.Errorf("grand total = %d, want %d", s.GrandTotal.Total, grand)
	}
}

func TestSummarizeRowsAreSorted(t *testing.T) {
	records := []ClassifiedRecord{
		classified("Zulu", Bucket0to7),
		classified("Alpha", Bucket0to7),
		classified("Mike", Bucket0to7),
	}
	s := Summarize(records)
	want := []string{"Alpha", "Mike", "Zulu"}
	for i, row := range s.Rows {
		if row.SubDivision != want[i] {
			t.Fatalf("row %d = %q, want %q", i, row.SubDivision, want[i])
		}
		if row.SrNo != i+1 {
			t.Errorf("row %q SrNo = %d, want %d", row.SubDivision, row.SrNo, i+1)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if len(s.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(s.Rows))
	}
	if s.GrandTotal.Total != 0 || s.GrandTotal.Counts != [NumBuckets]int{} {
		t.Fatalf("expected all-zero grand total, got %+v", s.GrandTotal)
	}
	if s.GrandTotal.SubDivision != GrandTotalLabel {
		t.Errorf("grand total label = %q", s.GrandTotal.SubDivision)
	}
}

func TestOverview(t *testing.T) {
	records := []ClassifiedRecord{
		classified("A", Bucket0to7),
		classified("A", Bucket0to7),
		classified("B", BucketOver45),
	}
	ov := Overview(records)
	if ov.Total != 3 {
		t.Fatalf("total = %d, want 3", ov.Total)
	}
	if ov.Buckets != [NumBuckets]int{2, 0, 0, 0, 1} {
		t.Errorf("buckets = %v", ov.Buckets)
	}

	empty := Overview(nil)
	if empty.Total != 0 || empty.Buckets != [NumBuckets]int{} {
		t.Errorf("empty overview = %+v", empty)
	}
}
