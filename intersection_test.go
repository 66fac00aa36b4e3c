package intersect

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func L(x1, y1, x2, y2 float64) Line {
	return Line{Point{x1, y1}, Point{x2, y2}}
}

func TestIntersect(t *testing.T) {
	var tts = []struct {
		a, b Line
		z    string // empty means no intersection
	}{
		// crossing
		{L(0.0, 0.0, 10.0, 10.0), L(0.0, 10.0, 10.0, 0.0), "Intersection([5; 5])"},
		{L(5.0, 0.0, 5.0, 10.0), L(0.0, 5.0, 10.0, 5.0), "Intersection([5; 5])"},

		// touching
		{L(0.0, 0.0, 10.0, 0.0), L(5.0, 0.0, 5.0, 5.0), "Intersection([5; 0])"},   // T
		{L(0.0, 0.0, 10.0, 0.0), L(10.0, 0.0, 20.0, 5.0), "Intersection([10; 0])"}, // endpoints
		{L(0.0, 0.0, 5.0, 0.0), L(5.0, 0.0, 10.0, 0.0), "Intersection([5; 0])"},    // collinear end-to-end

		// not intersecting
		{L(0.0, 0.0, 10.0, 0.0), L(0.0, 1.0, 10.0, 1.0), ""},  // parallel
		{L(0.0, 0.0, 1.0, 0.0), L(5.0, 0.0, 6.0, 0.0), ""},    // collinear but disjoint
		{L(0.0, 0.0, 0.0, 1.0), L(0.0, 5.0, 0.0, 6.0), ""},    // vertical collinear but disjoint
		{L(0.0, 0.0, 1.0, 1.0), L(3.0, 0.0, 0.0, 3.0), ""},    // lines cross beyond the segments
		{L(0.0, 0.0, 10.0, 0.0), L(11.0, 1.0, 20.0, 5.0), ""}, // disjoint bounding boxes

		// overlapping
		{L(0.0, 0.0, 10.0, 0.0), L(5.0, 0.0, 15.0, 0.0), "Overlap([5; 0]−[10; 0])"},
		{L(0.0, 0.0, 10.0, 0.0), L(15.0, 0.0, 5.0, 0.0), "Overlap([5; 0]−[10; 0])"}, // reversed direction
		{L(0.0, 0.0, 10.0, 0.0), L(2.0, 0.0, 5.0, 0.0), "Overlap([2; 0]−[5; 0])"},   // containment
		{L(0.0, 0.0, 10.0, 0.0), L(0.0, 0.0, 10.0, 0.0), "Overlap([0; 0]−[10; 0])"}, // identical
		{L(0.0, 0.0, 0.0, 10.0), L(0.0, 5.0, 0.0, 20.0), "Overlap([0; 5]−[0; 10])"}, // vertical
		{L(0.0, 0.0, 4.0, 4.0), L(2.0, 2.0, 8.0, 8.0), "Overlap([2; 2]−[4; 4])"},    // diagonal

		// degenerate point segments
		{L(5.0, 5.0, 5.0, 5.0), L(0.0, 0.0, 10.0, 10.0), "Intersection([5; 5])"},
		{L(0.0, 0.0, 10.0, 10.0), L(5.0, 6.0, 5.0, 6.0), ""},
		{L(5.0, 5.0, 5.0, 5.0), L(5.0, 5.0, 5.0, 5.0), "Intersection([5; 5])"},
		{L(5.0, 5.0, 5.0, 5.0), L(6.0, 6.0, 6.0, 6.0), ""},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprintf("%v x %v", tt.a, tt.b), func(t *testing.T) {
			z, ok := Intersect(tt.a, tt.b)
			z2, ok2 := Intersect(tt.b, tt.a)
			if tt.z == "" {
				test.That(t, !ok)
				test.That(t, !ok2)
			} else {
				test.That(t, ok)
				test.T(t, z.String(), tt.z)
				test.That(t, ok2)
				test.T(t, z2.String(), tt.z) // symmetric
			}
		})
	}
}

func TestIntersectLinePoint(t *testing.T) {
	var tts = []struct {
		l  Line
		p  Point
		ok bool
	}{
		{L(0.0, 0.0, 10.0, 0.0), Point{5.0, 0.0}, true},
		{L(0.0, 0.0, 10.0, 0.0), Point{0.0, 0.0}, true},
		{L(0.0, 0.0, 10.0, 0.0), Point{10.0, 0.0}, true},
		{L(0.0, 0.0, 10.0, 10.0), Point{4.0, 4.0}, true},
		{L(0.0, 0.0, 10.0, 0.0), Point{5.0, 1.0}, false},
		{L(0.0, 0.0, 10.0, 0.0), Point{11.0, 0.0}, false},
		{L(0.0, 0.0, 10.0, 0.0), Point{-1.0, 0.0}, false},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprintf("%v in %v", tt.p, tt.l), func(t *testing.T) {
			z, ok := IntersectLinePoint(tt.l, tt.p)
			test.T(t, ok, tt.ok)
			if ok {
				test.T(t, z.Point, tt.p)
			}
		})
	}
}

func TestPointOrder(t *testing.T) {
	var tts = []struct {
		a, b Point
		cmp  int
	}{
		{Point{0.0, 0.0}, Point{1.0, 0.0}, -1},
		{Point{1.0, 0.0}, Point{0.0, 0.0}, 1},
		{Point{0.0, 0.0}, Point{0.0, 1.0}, -1}, // ties from bottom to top
		{Point{0.0, 1.0}, Point{0.0, 0.0}, 1},
		{Point{0.0, 0.0}, Point{0.0, 0.0}, 0},
		{Point{0.0, 0.0}, Point{Epsilon / 2.0, 0.0}, 0}, // within tolerance
	}
	for _, tt := range tts {
		t.Run(fmt.Sprintf("%v %v", tt.a, tt.b), func(t *testing.T) {
			test.T(t, comparePoints(tt.a, tt.b), tt.cmp)
		})
	}
}
