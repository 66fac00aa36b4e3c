package intersect

import (
	"testing"

	"github.com/tdewolff/test"
)

func statusOrder(s *sweepStatus) []int {
	var order []int
	n := s.root
	if n == nil {
		return order
	}
	for n.left != nil {
		n = n.left
	}
	for ; n != nil; n = n.Next() {
		order = append(order, n.seg)
	}
	return order
}

func TestSweepStatus(t *testing.T) {
	segments := []*sweepSegment{
		newSweepSegment(L(0.0, 4.0, 10.0, 4.0), 0),
		newSweepSegment(L(0.0, 2.0, 10.0, 2.0), 1),
		newSweepSegment(L(0.0, 8.0, 10.0, 8.0), 2),
		newSweepSegment(L(0.0, 6.0, 10.0, 6.0), 3),
		newSweepSegment(L(0.0, 0.0, 10.0, 0.0), 4),
	}

	s := newSweepStatus()
	for _, seg := range segments {
		s.Insert(seg)
	}
	test.T(t, statusOrder(s), []int{4, 1, 0, 3, 2}) // from bottom to top

	// nodes link back to their segments
	for _, seg := range segments {
		test.That(t, seg.node != nil)
		test.T(t, seg.node.seg, seg.seg)
	}

	// removing keeps the order and the node back-pointers intact
	s.Remove(segments[0].node)
	test.That(t, segments[0].node == nil)
	test.T(t, statusOrder(s), []int{4, 1, 3, 2})
	for _, seg := range segments[1:] {
		test.T(t, seg.node.seg, seg.seg)
	}

	s.Remove(segments[4].node)
	s.Remove(segments[2].node)
	test.T(t, statusOrder(s), []int{1, 3})
	s.Remove(segments[1].node)
	s.Remove(segments[3].node)
	test.That(t, s.root == nil)
}

func TestSweepStatusSlopeTieBreak(t *testing.T) {
	// all meet at the sweep position, ascending slope is the order just after it
	s := newSweepStatus()
	s.pos = Point{5.0, 5.0}
	s.Insert(newSweepSegment(L(0.0, 0.0, 10.0, 10.0), 0)) // slope 1
	s.Insert(newSweepSegment(L(0.0, 10.0, 10.0, 0.0), 1)) // slope -1
	s.Insert(newSweepSegment(L(5.0, 0.0, 5.0, 10.0), 2))  // vertical
	s.Insert(newSweepSegment(L(0.0, 5.0, 10.0, 5.0), 3))  // slope 0
	test.T(t, statusOrder(s), []int{1, 3, 0, 2})
}

func TestSweepQueue(t *testing.T) {
	points := []Point{
		{5.0, 0.0}, {0.0, 0.0}, {5.0, -2.0}, {3.0, 8.0}, {0.0, 1.0}, {9.0, 0.0},
	}
	q := sweepQueue{}
	for i, p := range points {
		q.Push(&sweepEvent{Point: p, kind: eventStart, seg: i})
	}

	var order []int
	for 0 < len(q) {
		order = append(order, q.Pop().seg)
	}
	test.T(t, order, []int{1, 4, 3, 2, 0, 5}) // from left to right, ties from bottom to top
}
