package core

import (
	"testing"
	"time"
)

func TestBucketFor(t *testing.T) {
	cases := []struct {
		days int
		want Bucket
	}{
		{1, Bucket0to7},
		{7, Bucket0to7},
		{8, Bucket8to15},
		{15, Bucket8to15},
		{16, Bucket16to30},
		{30, Bucket16to30},
		{31, Bucket31to45},
		{45, Bucket31to45},
		{46, BucketOver45},
		{400, BucketOver45},
		// Future installation dates route through the same inclusive
		// comparisons and land in the first bucket.
		{0, Bucket0to7},
		{-3, Bucket0to7},
	}
	for _, tc := range cases {
		if got := BucketFor(tc.days); got != tc.want {
			t.Errorf("BucketFor(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestBucketForIsMonotonic(t *testing.T) {
	prev := BucketFor(1)
	for d := 2; d <= 100; d++ {
		b := BucketFor(d)
		if b < prev {
			t.Fatalf("bucket order decreased at d=%d: %q after %q", d, b, prev)
		}
		prev = b
	}
}

func TestDaysPending(t *testing.T) {
	cases := []struct {
		name      string
		installed string
		today     string
		want      int
	}{
		{"same day counts as one", "01-01-2024", "01-01-2024", 1},
		{"one week span", "01-01-2024", "08-01-2024", 8},
		{"future date goes negative", "10-01-2024", "08-01-2024", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			installed := mustDate(t, tc.installed)
			today := mustDate(t, tc.today)
			if got := DaysPending(installed, today); got != tc.want {
				t.Fatalf("DaysPending(%s, %s) = %d, want %d", tc.installed, tc.today, got, tc.want)
			}
		})
	}
}

func TestClassifyExample(t *testing.T) {
	// Worked example: installed 2024-01-01, today 2024-01-08.
	records := []Record{{
		InstallationDate: NewDate(2024, 1, 1),
		ApplicationNo:    "APP1",
		ConsumerNo:       "CON1",
		SubDivision:      "North",
	}}
	out, future := Classify(records, NewDate(2024, 1, 8))
	if future != 0 {
		t.Fatalf("unexpected future-dated count: %d", future)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].DaysPending != 8 {
		t.Errorf("days pending = %d, want 8", out[0].DaysPending)
	}
	if out[0].Bucket.String() != "8 to 15 Days" {
		t.Errorf("bucket = %q, want %q", out[0].Bucket, "8 to 15 Days")
	}
}

func TestClassifyCountsFutureDated(t *testing.T) {
	records := []Record{
		{InstallationDate: NewDate(2024, 2, 1)},
		{InstallationDate: NewDate(2024, 1, 1)},
	}
	out, future := Classify(records, NewDate(2024, 1, 10))
	if future != 1 {
		t.Fatalf("future-dated count = %d, want 1", future)
	}
	if out[0].Bucket != Bucket0to7 {
		t.Errorf("future-dated record bucket = %q, want %q", out[0].Bucket, Bucket0to7)
	}
}

func TestClassifyEmpty(t *testing.T) {
	out, future := Classify(nil, NewDate(2024, 1, 1))
	if len(out) != 0 || future != 0 {
		t.Fatalf("expected empty result, got %d records, %d future", len(out), future)
	}
}

func TestParseBucketRoundTrip(t *testing.T) {
	for _, b := range Buckets() {
		got, err := ParseBucket(b.String())
		if err != nil {
			t.Fatalf("ParseBucket(%q): %v", b.String(), err)
		}
		if got != b {
			t.Errorf("ParseBucket(%q) = %v, want %v", b.String(), got, b)
		}
	}
	if _, err := ParseBucket("nonsense"); err == nil {
		t.Fatalf("expected error for unknown label")
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
