package intersect

import (
	"fmt"
	"math"
)

// Intersection is the intersection between two line segments: either a single
// point where the segments cross or touch, or a collinear overlapping
// sub-segment shared by both.
type Intersection struct {
	Point     Point // intersection point, or the start of the overlap
	Overlap   Line  // collinear overlapping sub-segment, valid when IsOverlap
	IsOverlap bool
}

// Single returns a single representative point: the intersection point itself,
// or the start of the overlap sub-segment. The latter is geometrically
// incomplete but convenient.
func (z Intersection) Single() Point {
	return z.Point
}

func (z Intersection) String() string {
	if z.IsOverlap {
		return fmt.Sprintf("Overlap(%v)", z.Overlap)
	}
	return fmt.Sprintf("Intersection(%v)", z.Point)
}

// Intersect returns the intersection between line segments a and b, or false
// when they do not meet. Segments that cross or touch at exactly one point
// yield a single point; collinear segments sharing more than one point yield
// the overlap computed as the intersection of both parameter ranges along the
// shared line. Most of this follows https://stackoverflow.com/a/565282.
func Intersect(a, b Line) (Intersection, bool) {
	// bounding box rejection
	if math.Max(a.Start.X, a.End.X)+Epsilon < math.Min(b.Start.X, b.End.X) ||
		math.Max(b.Start.X, b.End.X)+Epsilon < math.Min(a.Start.X, a.End.X) ||
		math.Max(a.Start.Y, a.End.Y)+Epsilon < math.Min(b.Start.Y, b.End.Y) ||
		math.Max(b.Start.Y, b.End.Y)+Epsilon < math.Min(a.Start.Y, a.End.Y) {
		return Intersection{}, false
	}

	p, q := a.Start, b.Start
	r, s := a.End.Sub(p), b.End.Sub(q)
	rCrossS := r.PerpDot(s)
	qmp := q.Sub(p)

	if equal(rCrossS, 0.0) {
		// parallel, but one (or both) of the segments may be a point
		aIsPoint, bIsPoint := a.Empty(), b.Empty()
		if aIsPoint || bIsPoint {
			if aIsPoint && bIsPoint {
				if a.Start.Equals(b.Start) {
					return Intersection{Point: a.Start}, true
				}
				return Intersection{}, false
			} else if aIsPoint {
				return IntersectLinePoint(b, a.Start)
			}
			return IntersectLinePoint(a, b.Start)
		}

		if !equal(qmp.PerpDot(r), 0.0) {
			// parallel and non-intersecting
			return Intersection{}, false
		}

		// collinear, project b's endpoints onto a's parameter range
		rr := r.Dot(r)
		t0 := qmp.Dot(r) / rr
		t1 := t0 + s.Dot(r)/rr
		if t1 < t0 {
			t0, t1 = t1, t0
		}
		t0, t1 = math.Max(t0, 0.0), math.Min(t1, 1.0)
		if t1 < t0 && !equal(t0, t1) {
			// collinear but disjoint along the shared line
			return Intersection{}, false
		} else if equal(t0, t1) {
			// touch end-to-end at a single point
			return Intersection{Point: p.Add(r.Mul(t0))}, true
		}
		overlap := Line{p.Add(r.Mul(t0)), p.Add(r.Mul(t1))}.ordered()
		return Intersection{Point: overlap.Start, Overlap: overlap, IsOverlap: true}, true
	}

	// the segments are not parallel
	t := qmp.PerpDot(s.Div(rCrossS))
	u := qmp.PerpDot(r.Div(rCrossS))
	if t < -Epsilon || 1.0+Epsilon < t || u < -Epsilon || 1.0+Epsilon < u {
		return Intersection{}, false
	}
	return Intersection{Point: p.Add(r.Mul(t))}, true
}

// IntersectLinePoint returns the intersection between line segment l and point
// p, ie. whether p lies on l. Inspired by https://stackoverflow.com/a/17590923.
func IntersectLinePoint(l Line, p Point) (Intersection, bool) {
	// take care of endpoint equality
	if l.Start.Equals(p) || l.End.Equals(p) {
		return Intersection{Point: p}, true
	}

	ab := l.End.Sub(l.Start).Length()
	ap := p.Sub(l.Start).Length()
	pb := l.End.Sub(p).Length()
	if equal(ab, ap+pb) {
		return Intersection{Point: p}, true
	}
	return Intersection{}, false
}
