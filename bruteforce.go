package intersect

import (
	"sort"
)

// PairwiseIntersections tests every pair of segments and returns the same
// result set as a sweep would, in the same order. It runs in O(n^2) but with a
// small constant, which beats the sweep for small inputs. The input is not
// validated.
func PairwiseIntersections(lines []Line, ignoreEndpoints bool) Results {
	segments := make([]Line, len(lines))
	for i, l := range lines {
		segments[i] = l.ordered()
	}

	var results Results
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			z, ok := Intersect(segments[i], segments[j])
			if !ok {
				continue
			}
			if ignoreEndpoints && !z.IsOverlap &&
				endsAt(segments[i], z.Point) && endsAt(segments[j], z.Point) {
				continue
			}

			if z.IsOverlap {
				overlap := z.Overlap
				results = append(results, Result{Point: overlap.Start, Overlap: &overlap, Segments: []int{i, j}})
				continue
			}

			// segments meeting at the same coordinate merge into one result
			merged := false
			for k := range results {
				if r := &results[k]; r.Overlap == nil && r.Point.Equals(z.Point) {
					r.Segments = insertID(insertID(r.Segments, i), j)
					merged = true
					break
				}
			}
			if !merged {
				results = append(results, Result{Point: z.Point, Segments: []int{i, j}})
			}
		}
	}

	// ascending sweep order, point results before overlaps at the same
	// coordinate, overlaps by segment pair
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if cmp := comparePoints(a.Point, b.Point); cmp != 0 {
			return cmp < 0
		}
		if (a.Overlap == nil) != (b.Overlap == nil) {
			return a.Overlap == nil
		}
		if a.Segments[0] != b.Segments[0] {
			return a.Segments[0] < b.Segments[0]
		}
		return a.Segments[1] < b.Segments[1]
	})
	return results
}

func endsAt(l Line, p Point) bool {
	return l.Start.Equals(p) || l.End.Equals(p)
}

// insertID inserts id into the sorted slice ids unless already present.
func insertID(ids []int, id int) []int {
	k := sort.SearchInts(ids, id)
	if k < len(ids) && ids[k] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[k+1:], ids[k:])
	ids[k] = id
	return ids
}
