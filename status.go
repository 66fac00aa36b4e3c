package intersect

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
)

// sweepSegment is an active segment tracked by the status structure. Line is
// ordered so that Start precedes End in sweep order; seg is the index of the
// segment in the input.
type sweepSegment struct {
	Line
	seg      int
	vertical bool
	node     *statusNode // btree node for O(1) access (instead of Find in O(log n))
}

func newSweepSegment(l Line, seg int) *sweepSegment {
	l = l.ordered()
	return &sweepSegment{
		Line:     l,
		seg:      seg,
		vertical: l.Vertical(),
	}
}

// yAt returns the vertical position of the segment at sweep position pos. The
// ordering key is recomputed lazily since it changes continuously as the sweep
// advances. Vertical segments clamp to the event's y.
func (s *sweepSegment) yAt(pos Point) float64 {
	if s.vertical {
		return math.Max(s.Start.Y, math.Min(s.End.Y, pos.Y))
	}
	t := (pos.X - s.Start.X) / (s.End.X - s.Start.X)
	t = math.Max(0.0, math.Min(1.0, t))
	return s.Start.Interpolate(s.End, t).Y
}

// slope returns dy/dx of the segment, +Inf for vertical segments so that they
// sort above all segments meeting them at the same point.
func (s *sweepSegment) slope() float64 {
	if s.vertical {
		return math.Inf(1.0)
	}
	return (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
}

// endsAt returns true if p coincides with either input endpoint.
func (s *sweepSegment) endsAt(p Point) bool {
	return s.Start.Equals(p) || s.End.Equals(p)
}

func (s *sweepSegment) String() string {
	return fmt.Sprintf("%v(%v)", s.seg, s.Line)
}

type statusNode struct {
	parent, left, right *statusNode
	height              int

	*sweepSegment
}

func (n *statusNode) Prev() *statusNode {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

func (n *statusNode) Next() *statusNode {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *statusNode) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *statusNode) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *statusNode) swapChild(a, b *statusNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *statusNode) rotateLeft() *statusNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *statusNode) rotateRight() *statusNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *statusNode) print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.print(w, indent+1)
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.sweepSegment)
	if n.left != nil {
		n.left.print(w, indent+1)
	}
}

// sweepStatus is the ordered set of segments currently crossing the sweep
// line, ordered by vertical position at the current sweep position pos.
// Between two consecutive events this order matches the true vertical order
// exactly, since every order change (a crossing) is itself a queued event.
type sweepStatus struct {
	root *statusNode
	pos  Point // current sweep position
	pool *sync.Pool
}

func newSweepStatus() *sweepStatus {
	return &sweepStatus{
		pool: &sync.Pool{New: func() any { return &statusNode{} }},
	}
}

// compare orders segments by vertical position at the current sweep position.
// Segments that meet exactly at the sweep position are ordered by ascending
// slope, which is their vertical order just after the event point, and
// collinear ties fall back to the segment index.
func (s *sweepStatus) compare(a, b *sweepSegment) int {
	ay, by := a.yAt(s.pos), b.yAt(s.pos)
	if !equal(ay, by) {
		if ay < by {
			return -1
		}
		return 1
	}

	sa, sb := a.slope(), b.slope()
	if sa != sb && !equal(sa, sb) {
		if sa < sb {
			return -1
		}
		return 1
	}

	// collinear, sort by segment index
	if a.seg < b.seg {
		return -1
	} else if b.seg < a.seg {
		return 1
	}
	return 0
}

func (s *sweepStatus) newNode(item *sweepSegment) *statusNode {
	n := s.pool.Get().(*statusNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.sweepSegment = item
	n.sweepSegment.node = n
	return n
}

func (s *sweepStatus) returnNode(n *statusNode) {
	n.sweepSegment.node = nil
	n.sweepSegment = nil // help the GC
	s.pool.Put(n)
}

func (s *sweepStatus) find(item *sweepSegment) (*statusNode, int) {
	n := s.root
	for n != nil {
		cmp := s.compare(item, n.sweepSegment)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

// findAt returns a node whose segment passes through p, or nil. Neighboring
// nodes may tie at p as well, since segments meeting at p are contiguous in
// the status order.
func (s *sweepStatus) findAt(p Point) *statusNode {
	n := s.root
	for n != nil {
		y := n.yAt(p)
		if equal(y, p.Y) {
			return n
		} else if p.Y < y {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

func (s *sweepStatus) rebalance(n *statusNode) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// tree is excessively right-heavy, rotate it to the left
			if n.right != nil && n.right.balance() < 0 {
				// right tree is left-heavy, rotate the right tree to the right to counteract
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// tree is excessively left-heavy, rotate it to the right
			if n.left != nil && n.left.balance() > 0 {
				// left tree is right-heavy, rotate the left tree to the left to counteract
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

// Insert adds a segment to the status structure at its position at the
// current sweep position and returns its node.
func (s *sweepStatus) Insert(item *sweepSegment) *statusNode {
	if s.root == nil {
		s.root = s.newNode(item)
		return s.root
	}

	rebalance := false
	n, cmp := s.find(item)
	if cmp < 0 {
		// lower
		n.left = s.newNode(item)
		n.left.parent = n
		rebalance = n.right == nil
		n = n.left
	} else if 0 < cmp {
		// higher
		n.right = s.newNode(item)
		n.right.parent = n
		rebalance = n.left == nil
		n = n.right
	} else {
		// equal, can only be the same segment
		return n
	}

	if rebalance {
		n.height++
		if n.parent != nil {
			s.rebalance(n.parent)
		}
	}
	return n
}

// Remove removes the node from the status structure. The segment's former
// neighbors become adjacent to each other.
func (s *sweepStatus) Remove(n *statusNode) {
	var o *statusNode
	for {
		if n.height == 1 {
			o = n.parent
			if o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			return
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		}
		n.sweepSegment, o.sweepSegment = o.sweepSegment, n.sweepSegment
		n.sweepSegment.node, o.sweepSegment.node = n, o
		n = o
	}
}

func (s *sweepStatus) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
