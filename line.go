package intersect

import (
	"fmt"
	"math"
)

// Line is a 2D line segment between Start and End. Segments are identified by
// their index in the input slice passed to Lines or PairwiseIntersections.
type Line struct {
	Start, End Point
}

// Equals returns true if both segments have the same endpoints in the same order with tolerance Epsilon.
func (l Line) Equals(o Line) bool {
	return l.Start.Equals(o.Start) && l.End.Equals(o.End)
}

// Empty returns true if the segment has zero length.
func (l Line) Empty() bool {
	return l.Start.Equals(l.End)
}

// Vertical returns true if the segment is vertical.
func (l Line) Vertical() bool {
	return equal(l.Start.X, l.End.X)
}

func (l Line) String() string {
	return fmt.Sprintf("%v−%v", l.Start, l.End)
}

// ordered returns the segment with Start preceding End in sweep order.
func (l Line) ordered() Line {
	if 0 < comparePoints(l.Start, l.End) {
		l.Start, l.End = l.End, l.Start
	}
	return l
}

// finite returns true if all coordinates are finite numbers.
func (l Line) finite() bool {
	finite := func(f float64) bool {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return finite(l.Start.X) && finite(l.Start.Y) && finite(l.End.X) && finite(l.End.Y)
}

// validateLines checks that there is input at all and that every segment has
// finite coordinates and non-zero length.
func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyInput
	}
	for i, l := range lines {
		if !l.finite() {
			return fmt.Errorf("%w: segment %d has non-finite coordinates", ErrInvalidSegment, i)
		} else if l.Empty() {
			return fmt.Errorf("%w: segment %d has zero length", ErrInvalidSegment, i)
		}
	}
	return nil
}

// ToLines converts a list of {x1,y1,x2,y2} coordinates into line segments.
func ToLines(coords [][4]float64) []Line {
	lines := make([]Line, len(coords))
	for i, c := range coords {
		lines[i] = Line{Point{c[0], c[1]}, Point{c[2], c[3]}}
	}
	return lines
}
