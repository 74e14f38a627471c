// SPDX-License-Identifier: MIT

package knapsack

import "fmt"

// Span is the half-open range [Start, End) of item positions of one group.
type Span struct {
	Start int
	End   int
}

// Len returns the number of items in the span.
func (s Span) Len() int { return s.End - s.Start }

// GroupIndex maps each group id to its item span and records the size of the
// largest group. Spans[g] belongs to group g. It is immutable once built.
type GroupIndex struct {
	Spans        []Span
	MaxGroupSize int
}

// Groups returns the number of distinct groups.
func (gi GroupIndex) Groups() int { return len(gi.Spans) }

// IndexGroups validates the group sequence and builds its GroupIndex.
//
// Contract:
//   - groups[0] == 0 when len(groups) > 0,
//   - groups is non-decreasing,
//   - every boundary increases the id by exactly one.
//
// An empty sequence yields an empty index with MaxGroupSize 0.
//
// Errors: ErrInvalidGroupSequence, wrapped with the offending position.
//
// Complexity: O(n) time, O(groups) space.
func IndexGroups(groups []int) (GroupIndex, error) {
	var gi GroupIndex
	if len(groups) == 0 {
		return gi, nil
	}
	if groups[0] != 0 {
		return GroupIndex{}, fmt.Errorf("%w: first group is %d", ErrInvalidGroupSequence, groups[0])
	}

	var (
		i, g      int
		lastGroup = 0 // highest id seen so far
		start     = 0 // first position of the open group
	)
	hint := groups[len(groups)-1] + 1
	if hint < 1 || hint > len(groups) {
		hint = len(groups)
	}
	gi.Spans = make([]Span, 0, hint)
	for i = 1; i < len(groups); i++ {
		g = groups[i]
		switch {
		case g == lastGroup:
			continue
		case g == lastGroup+1:
			// boundary: close the open group
			gi.Spans = append(gi.Spans, Span{Start: start, End: i})
			start = i
			lastGroup = g
		case g > lastGroup+1:
			return GroupIndex{}, fmt.Errorf("%w: group %d at index %d skips after %d",
				ErrInvalidGroupSequence, g, i, lastGroup)
		default:
			return GroupIndex{}, fmt.Errorf("%w: group %d at index %d re-enters after %d",
				ErrInvalidGroupSequence, g, i, lastGroup)
		}
	}
	// The last group has no boundary event.
	gi.Spans = append(gi.Spans, Span{Start: start, End: len(groups)})

	for _, s := range gi.Spans {
		if s.Len() > gi.MaxGroupSize {
			gi.MaxGroupSize = s.Len()
		}
	}

	return gi, nil
}
