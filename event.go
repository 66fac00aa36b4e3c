package intersect

import (
	"fmt"
	"strings"
)

type eventKind int

const (
	eventStart eventKind = iota // left endpoint of a segment
	eventEnd                    // right endpoint of a segment
	eventCross                  // discovered intersection between two segments
)

// sweepEvent is an entry of the event queue. Start and end events refer to a
// single segment, cross events carry the discovered intersection and the pair
// of segment indices that produced it. Events at the same coordinate are
// coalesced when popped from the queue.
type sweepEvent struct {
	Point Point
	kind  eventKind
	seg   int          // segment index for start/end events
	a, b  int          // segment pair for cross events
	z     Intersection // discovered intersection for cross events
}

func (e *sweepEvent) String() string {
	switch e.kind {
	case eventStart:
		return fmt.Sprintf("start(%v %v)", e.seg, e.Point)
	case eventEnd:
		return fmt.Sprintf("end(%v %v)", e.seg, e.Point)
	}
	return fmt.Sprintf("cross(%v×%v %v)", e.a, e.b, e.z)
}

// sweepQueue is a heap priority queue of sweep events ordered by sweep
// position. Newly discovered intersections are pushed mid-sweep; they always
// lie at or after the current position, the queue never rewinds.
type sweepQueue []*sweepEvent

func (q sweepQueue) Less(i, j int) bool {
	return comparePoints(q[i].Point, q[j].Point) < 0
}

func (q sweepQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q sweepQueue) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *sweepQueue) Push(item *sweepEvent) {
	*q = append(*q, item)
	q.up(len(*q) - 1)
}

func (q *sweepQueue) Pop() *sweepEvent {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	*q = (*q)[:n]
	return item
}

// from container/heap
func (q sweepQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q sweepQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

func (q sweepQueue) String() string {
	q2 := make(sweepQueue, len(q))
	copy(q2, q)

	sb := strings.Builder{}
	for 0 < len(q2) {
		fmt.Fprintln(&sb, q2.Pop())
	}
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
