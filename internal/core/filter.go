package core

import "sort"

// All is the no-filter sentinel used by both filter dimensions.
const All = "ALL"

// Filter is an optional pair of equality filters over classified records.
// Either field may be All, which deactivates that dimension.
type Filter struct {
	SubDivision string
	Bucket      string
}

// NoFilter returns the identity filter (ALL/ALL).
func NoFilter() Filter {
	return Filter{SubDivision: All, Bucket: All}
}

// IsAll reports whether no dimension is active.
func (f Filter) IsAll() bool {
	return (f.SubDivision == "" || f.SubDivision == All) &&
		(f.Bucket == "" || f.Bucket == All)
}

func (f Filter) matches(r ClassifiedRecord) bool {
	if f.SubDivision != "" && f.SubDivision != All && r.SubDivision != f.SubDivision {
		return false
	}
	if f.Bucket != "" && f.Bucket != All && r.Bucket.String() != f.Bucket {
		return false
	}
	return true
}

// Apply returns the subset of records matching all active dimensions.
// Filter values absent from the data simply yield an empty result. The
// input slice is never mutated; the result is always a fresh slice.
func (f Filter) Apply(records []ClassifiedRecord) []ClassifiedRecord {
	out := make([]ClassifiedRecord, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// SubDivisions returns the distinct sub-divisions present in the records,
// sorted alphabetically. Used to populate the filter control.
func SubDivisions(records []ClassifiedRecord) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		if _, ok := seen[r.SubDivision]; ok {
			continue
		}
		seen[r.SubDivision] = struct{}{}
		out = append(out, r.SubDivision)
	}
	sort.Strings(out)
	return out
}
