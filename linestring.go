package intersect

import (
	"github.com/paulmach/orb"
)

// below this number of segments a pairwise test beats the sweep
const bruteForceCutoff = 25

// FromLineString converts the consecutive coordinates of ls into line segments.
func FromLineString(ls orb.LineString) []Line {
	if len(ls) < 2 {
		return nil
	}
	lines := make([]Line, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		lines[i-1] = Line{Point{ls[i-1][0], ls[i-1][1]}, Point{ls[i][0], ls[i][1]}}
	}
	return lines
}

// FromRing converts the closed ring r into line segments. orb keeps the first
// and last coordinate of a ring equal, so no closing segment is added.
func FromRing(r orb.Ring) []Line {
	return FromLineString(orb.LineString(r))
}

// SelfIntersections returns all intersections of a path with itself. Endpoint
// intersections are ignored, so the shared vertices of consecutive segments do
// not count, but T-intersections and overlaps do.
func SelfIntersections(lines []Line) (Results, error) {
	if len(lines) < bruteForceCutoff {
		if err := validateLines(lines); err != nil {
			return nil, err
		}
		return PairwiseIntersections(lines, true), nil
	}
	return New().
		IgnoreEndpointIntersections(true).
		Lines(lines...).
		Compute()
}

// IsSelfIntersecting returns true if the path intersects itself anywhere,
// without finding all intersections first.
func IsSelfIntersecting(lines []Line) (bool, error) {
	if len(lines) < bruteForceCutoff {
		if err := validateLines(lines); err != nil {
			return false, err
		}
		segments := make([]Line, len(lines))
		for i, l := range lines {
			segments[i] = l.ordered()
		}
		for i := 0; i < len(segments); i++ {
			for j := i + 1; j < len(segments); j++ {
				if z, ok := Intersect(segments[i], segments[j]); ok {
					if z.IsOverlap || !endsAt(segments[i], z.Point) || !endsAt(segments[j], z.Point) {
						return true, nil
					}
				}
			}
		}
		return false, nil
	}

	rs, err := New().
		IgnoreEndpointIntersections(true).
		StopAtFirstIntersection(true).
		Lines(lines...).
		Compute()
	if err != nil {
		return false, err
	}
	return 0 < len(rs), nil
}
