package scheduling

import (
	"sort"
	"time"
)

// Interval is a half-open [Start, End) span on the UTC timeline.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval intersects [start, end).
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && iv.Start.Before(end)
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, iv := range busy {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// mergeIntervals returns the sorted union of the given intervals.
func mergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// covers reports whether the union of intervals fully contains [start, end).
func covers(intervals []Interval, start, end time.Time) bool {
	if !start.Before(end) {
		return true
	}
	for _, iv := range mergeIntervals(intervals) {
		if !iv.Start.After(start) && !iv.End.Before(end) {
			return true
		}
	}
	return false
}
