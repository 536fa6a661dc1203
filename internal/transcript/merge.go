package transcript

import (
	"cmp"
	"slices"

	"meetreport/internal/analysis"
)

// Merge concatenates per-speaker segment lists in the order given and sorts
// them by start time. The sort is stable: equal starts keep roster order,
// then line order. The result is never nil.
func Merge(perSpeaker [][]Segment) []Segment {
	total := 0
	for _, segs := range perSpeaker {
		total += len(segs)
	}
	merged := make([]Segment, 0, total)
	for _, segs := range perSpeaker {
		merged = append(merged, segs...)
	}
	slices.SortStableFunc(merged, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return merged
}

// MergeResult parses every speaker of the result and returns the merged
// timeline. An empty slice means no transcript is available.
func MergeResult(res *analysis.AnalysisResult) []Segment {
	if res == nil {
		return []Segment{}
	}
	perSpeaker := make([][]Segment, 0, len(res.Speakers))
	for i, spk := range res.Speakers {
		perSpeaker = append(perSpeaker, Parse(spk, i))
	}
	return Merge(perSpeaker)
}

// Sorted reports whether the timeline is ordered by start time.
func Sorted(timeline []Segment) bool {
	return slices.IsSortedFunc(timeline, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
}
