package vers

import (
	"sort"
	"strings"
)

// Range is a union of Intervals with a set of point exclusions layered on
// top (one per "!=" constraint). A version is in the range if it falls
// inside at least one interval and isn't named in Exclusions.
type Range struct {
	Intervals  []Interval
	Exclusions []string
}

// NewRange builds a Range directly from a slice of intervals, with no
// exclusions.
func NewRange(intervals []Interval) *Range {
	return &Range{Intervals: intervals}
}

// Contains reports whether version falls inside the range: in at least
// one interval, and not named as an exclusion.
func (r *Range) Contains(version string) bool {
	matched := false
	for _, interval := range r.Intervals {
		if interval.Contains(version) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, exc := range r.Exclusions {
		if Compare(version, exc) == 0 {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the range matches no versions at all.
func (r *Range) IsEmpty() bool {
	for _, interval := range r.Intervals {
		if !interval.IsEmpty() {
			return false
		}
	}
	return true
}

// IsUnbounded reports whether the range matches every version (no
// exclusions, and at least one interval spans everything).
func (r *Range) IsUnbounded() bool {
	if len(r.Exclusions) > 0 {
		return false
	}
	for _, interval := range r.Intervals {
		if interval.IsUnbounded() {
			return true
		}
	}
	return false
}

// Union returns the range matching anything either r or other matches. A
// version stays excluded only if both sides excluded it.
func (r *Range) Union(other *Range) *Range {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	combined := make([]Interval, 0, len(r.Intervals)+len(other.Intervals))
	combined = append(combined, r.Intervals...)
	combined = append(combined, other.Intervals...)

	return &Range{
		Intervals:  mergeIntervals(combined),
		Exclusions: stringsInBoth(r.Exclusions, other.Exclusions),
	}
}

// Intersect returns the range matching only what both r and other match. A
// version is excluded if either side excluded it.
func (r *Range) Intersect(other *Range) *Range {
	if r.IsEmpty() || other.IsEmpty() {
		return &Range{}
	}

	var overlaps []Interval
	for _, a := range r.Intervals {
		for _, b := range other.Intervals {
			if in := a.Intersect(b); !in.IsEmpty() {
				overlaps = append(overlaps, in)
			}
		}
	}

	return &Range{
		Intervals:  mergeIntervals(overlaps),
		Exclusions: dedupeStrings(append(append([]string{}, r.Exclusions...), other.Exclusions...)),
	}
}

// Exclude returns a copy of r with version added to its exclusion set.
func (r *Range) Exclude(version string) *Range {
	exclusions := make([]string, len(r.Exclusions), len(r.Exclusions)+1)
	copy(exclusions, r.Exclusions)
	exclusions = append(exclusions, version)

	return &Range{Intervals: r.Intervals, Exclusions: exclusions}
}

// String renders the range as interval notation joined by " | ", with any
// exclusions appended.
func (r *Range) String() string {
	switch {
	case r.IsEmpty():
		return "empty"
	case r.IsUnbounded() && len(r.Exclusions) == 0:
		return "*"
	}

	parts := make([]string, len(r.Intervals))
	for i, interval := range r.Intervals {
		parts[i] = interval.String()
	}
	s := strings.Join(parts, " | ")

	if len(r.Exclusions) > 0 {
		s += " excluding " + strings.Join(r.Exclusions, ", ")
	}
	return s
}

// mergeIntervals collapses a set of intervals into the smallest equivalent
// set by sorting on lower bound and sweeping once, merging each interval
// into the previous one in the result whenever they overlap or touch.
func mergeIntervals(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, in := range intervals {
		if !in.IsEmpty() {
			sorted = append(sorted, in)
		}
	}
	if len(sorted) <= 1 {
		return sorted
	}

	sort.Slice(sorted, func(i, j int) bool {
		return intervalMinLess(sorted[i], sorted[j])
	})

	result := sorted[:1]
	for _, next := range sorted[1:] {
		last := result[len(result)-1]
		if merged := last.Union(next); merged != nil {
			result[len(result)-1] = *merged
			continue
		}
		result = append(result, next)
	}
	return result
}

// intervalMinLess orders intervals by lower bound, treating an empty Min
// (unbounded below) as sorting first.
func intervalMinLess(a, b Interval) bool {
	switch {
	case a.Min == "" && b.Min == "":
		return false
	case a.Min == "":
		return true
	case b.Min == "":
		return false
	default:
		return Compare(a.Min, b.Min) < 0
	}
}

// stringsInBoth returns the elements present in both a and b, in a's order.
func stringsInBoth(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}

	var result []string
	for _, s := range a {
		if _, ok := inB[s]; ok {
			result = append(result, s)
		}
	}
	return result
}

// dedupeStrings returns ss with duplicate entries removed, preserving the
// order of first occurrence.
func dedupeStrings(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	result := make([]string, 0, len(ss))
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}
