package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Bucket is the ordinal ageing classification of a pending record.
	Bucket int

	// Record is one installation row as loaded from the uploaded workbook.
	Record struct {
		InstallationDate time.Time // date-only, UTC midnight
		ApplicationNo    string
		ConsumerNo       string
		SubDivision      string
	}

	// ClassifiedRecord is a Record with its ageing computed against a
	// reference date.
	ClassifiedRecord struct {
		Record
		DaysPending int
		Bucket      Bucket
	}
)

const (
	Bucket0to7 Bucket = iota
	Bucket8to15
	Bucket16to30
	Bucket31to45
	BucketOver45

	// NumBuckets is the number of ageing buckets.
	NumBuckets = 5
)

// DateLayout is the day-month-year format used by uploads and reports.
const DateLayout = "02-01-2006"

var bucketLabels = [NumBuckets]string{
	"0 to 7 Days",
	"8 to 15 Days",
	"16 to 30 Days",
	"31 to 45 Days",
	"More than 45 Days",
}

var ErrUnknownBucket = errors.New("unknown age bucket")

func (b Bucket) String() string {
	if b < 0 || int(b) >= NumBuckets {
		return "unknown"
	}
	return bucketLabels[b]
}

// Buckets returns all buckets in display order.
func Buckets() [NumBuckets]Bucket {
	return [NumBuckets]Bucket{Bucket0to7, Bucket8to15, Bucket16to30, Bucket31to45, BucketOver45}
}

// BucketLabels returns the bucket display labels in display order.
func BucketLabels() []string {
	out := make([]string, NumBuckets)
	copy(out, bucketLabels[:])
	return out
}

// ParseBucket maps a display label back to its Bucket.
func ParseBucket(label string) (Bucket, error) {
	for i, l := range bucketLabels {
		if strings.EqualFold(strings.TrimSpace(label), l) {
			return Bucket(i), nil
		}
	}
	return 0, ErrUnknownBucket
}

// BucketFor classifies a days-pending value using inclusive upper bounds.
// Values below 1 (future installation dates) land in the first bucket; the
// caller is expected to count and log those rows.
func BucketFor(days int) Bucket {
	switch {
	case days <= 7:
		return Bucket0to7
	case days <= 15:
		return Bucket8to15
	case days <= 30:
		return Bucket16to30
	case days <= 45:
		return Bucket31to45
	default:
		return BucketOver45
	}
}

// NewDate returns a date-only time at UTC midnight.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DaysPending returns the elapsed days between installation and today,
// inclusive of the installation day itself: same-day installation is 1.
func DaysPending(installed, today time.Time) int {
	i := truncateDate(installed)
	t := truncateDate(today)
	return int(t.Sub(i).Hours()/24) + 1
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify computes days pending and bucket for every record against the
// given reference date. It returns a fresh slice; the input is not mutated.
// futureDated counts rows whose installation date is after today (they still
// classify into the first bucket).
func Classify(records []Record, today time.Time) (out []ClassifiedRecord, futureDated int) {
	out = make([]ClassifiedRecord, 0, len(records))
	for _, r := range records {
		days := DaysPending(r.InstallationDate, today)
		if days < 1 {
			futureDated++
		}
		out = append(out, ClassifiedRecord{
			Record:      r,
			DaysPending: days,
			Bucket:      BucketFor(days),
		})
	}
	return out, futureDated
}
