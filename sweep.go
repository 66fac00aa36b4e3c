// Package intersect finds all intersections among a set of 2D line segments
// using a Bentley-Ottmann sweep line in O((n+k) log n), with n the number of
// segments and k the number of intersections. Special cases (shared endpoints,
// vertical segments, collinear overlaps) are handled by use of:
//   - M. de Berg, et al. "Computational Geometry", Chapter 2, DOI: 10.1007/978-3-540-77974-2
//   - J.L. Bentley, T.A. Ottmann, "Algorithms for reporting and counting geometric
//     intersections", IEEE Trans. Computers C-28(9), p. 643-647, 1979
package intersect

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var (
	// ErrInvalidSegment is returned when an input segment has zero length or non-finite coordinates.
	ErrInvalidSegment = errors.New("invalid segment")
	// ErrConflictingConfig is returned when an option is set twice with different values, or when the algorithm is configured after Compute.
	ErrConflictingConfig = errors.New("conflicting configuration")
	// ErrEmptyInput is returned by Compute when no segments were supplied, so that callers cannot mistake "nothing to report" for "nothing was checked".
	ErrEmptyInput = errors.New("no segments to sweep")
)

// Result is a reported intersection: a single point, or a collinear overlap
// when Overlap is set, together with the ascending input indices of the
// segments involved.
type Result struct {
	Point    Point
	Overlap  *Line
	Segments []int
}

func (r Result) String() string {
	ids := make([]string, len(r.Segments))
	for i, seg := range r.Segments {
		ids[i] = fmt.Sprint(seg)
	}
	if r.Overlap != nil {
		return fmt.Sprintf("(%v {%s})", r.Overlap, strings.Join(ids, ","))
	}
	return fmt.Sprintf("(%v {%s})", r.Point, strings.Join(ids, ","))
}

// Results lists the found intersections in ascending sweep order. Point
// results merge the identifiers of all segments meeting at that coordinate,
// overlap results are reported per overlapping pair.
type Results []Result

func (rs Results) String() string {
	strs := make([]string, len(rs))
	for i, r := range rs {
		strs[i] = r.String()
	}
	return strings.Join(strs, " ")
}

// Algorithm accumulates line segments and options for a single sweep.
// Configuration calls chain; the first error is recorded and returned by
// Compute (and by Err). All options must be set before Compute and cannot
// change once set.
type Algorithm struct {
	lines           []Line
	ignoreEndpoints bool
	stopAtFirst     bool
	setIgnore       bool
	setStop         bool
	computed        bool
	err             error
}

// New returns an empty sweep algorithm configuration.
func New() *Algorithm {
	return &Algorithm{}
}

// Err returns the first configuration error, if any.
func (a *Algorithm) Err() error {
	return a.err
}

// IgnoreEndpointIntersections sets whether intersections at a point that is an
// input endpoint of both segments are suppressed. Crossings, overlaps and
// T-intersections are always reported.
func (a *Algorithm) IgnoreEndpointIntersections(ignore bool) *Algorithm {
	if a.err != nil {
		return a
	}
	if a.computed {
		a.err = fmt.Errorf("%w: IgnoreEndpointIntersections after Compute", ErrConflictingConfig)
	} else if a.setIgnore && a.ignoreEndpoints != ignore {
		a.err = fmt.Errorf("%w: IgnoreEndpointIntersections set twice", ErrConflictingConfig)
	} else {
		a.ignoreEndpoints, a.setIgnore = ignore, true
	}
	return a
}

// StopAtFirstIntersection sets whether the sweep halts at the first event that
// records an intersection, returning the partial result set found so far.
func (a *Algorithm) StopAtFirstIntersection(stop bool) *Algorithm {
	if a.err != nil {
		return a
	}
	if a.computed {
		a.err = fmt.Errorf("%w: StopAtFirstIntersection after Compute", ErrConflictingConfig)
	} else if a.setStop && a.stopAtFirst != stop {
		a.err = fmt.Errorf("%w: StopAtFirstIntersection set twice", ErrConflictingConfig)
	} else {
		a.stopAtFirst, a.setStop = stop, true
	}
	return a
}

// Lines appends input segments. Segment identifiers are the indices into the
// accumulated slice.
func (a *Algorithm) Lines(lines ...Line) *Algorithm {
	if a.err != nil {
		return a
	}
	if a.computed {
		a.err = fmt.Errorf("%w: Lines after Compute", ErrConflictingConfig)
	} else {
		a.lines = append(a.lines, lines...)
	}
	return a
}

// Compute validates the input and runs the sweep. It returns the found
// intersections in ascending sweep order, or the first configuration or
// validation error. The algorithm cannot be reused after Compute.
func (a *Algorithm) Compute() (Results, error) {
	if a.err != nil {
		return nil, a.err
	} else if a.computed {
		a.err = fmt.Errorf("%w: Compute called twice", ErrConflictingConfig)
		return nil, a.err
	}
	a.computed = true

	if err := validateLines(a.lines); err != nil {
		return nil, err
	}
	return newSweeper(a.lines, a.ignoreEndpoints, a.stopAtFirst).sweep(), nil
}

type segmentPair struct {
	a, b int // a < b
}

// sweeper holds the state of one in-flight Compute invocation: the event
// queue, the status structure and the result set. Nothing is shared between
// invocations, independent sweeps may run concurrently.
type sweeper struct {
	segments        []*sweepSegment
	queue           sweepQueue
	status          *sweepStatus
	handled         map[segmentPair]bool // pairs already tested for intersection
	ignoreEndpoints bool
	stopAtFirst     bool

	results Results

	// accumulators for the event being processed
	point    Point
	pointIDs map[int]bool
	overlaps Results
	behind   bool // a late discovery merged into earlier results
}

func newSweeper(lines []Line, ignoreEndpoints, stopAtFirst bool) *sweeper {
	s := &sweeper{
		segments:        make([]*sweepSegment, len(lines)),
		queue:           make(sweepQueue, 0, 2*len(lines)),
		status:          newSweepStatus(),
		handled:         map[segmentPair]bool{},
		ignoreEndpoints: ignoreEndpoints,
		stopAtFirst:     stopAtFirst,
	}
	for i, l := range lines {
		seg := newSweepSegment(l, i)
		s.segments[i] = seg
		s.queue = append(s.queue,
			&sweepEvent{Point: seg.Start, kind: eventStart, seg: i},
			&sweepEvent{Point: seg.End, kind: eventEnd, seg: i},
		)
	}
	s.queue.Init() // sort from left to right
	return s
}

func (s *sweeper) sweep() Results {
	for 0 < len(s.queue) {
		pos := s.queue[0].Point

		// pop and coalesce all events at this position; segments ending here
		// are removed first, their former neighbors become adjacent
		var starters, passers, touchers []*sweepSegment
		var crosses []*sweepEvent
		var probes [][2]*sweepSegment
		for 0 < len(s.queue) && s.queue[0].Point.Equals(pos) {
			e := s.queue.Pop()
			switch e.kind {
			case eventStart:
				starters = append(starters, s.segments[e.seg])
				touchers = append(touchers, s.segments[e.seg])
			case eventEnd:
				seg := s.segments[e.seg]
				if !slices.Contains(touchers, seg) {
					touchers = append(touchers, seg)
				}
				if n := seg.node; n != nil {
					// read the neighbor segments before Remove, it swaps node
					// payloads and recycles the vacated node
					if prev, next := n.Prev(), n.Next(); prev != nil && next != nil {
						probes = append(probes, [2]*sweepSegment{prev.sweepSegment, next.sweepSegment})
					}
					s.status.Remove(n)
				}
			case eventCross:
				crosses = append(crosses, e)
			}
		}

		// record the discovered intersections that reach this position, and
		// take out the active segments that pass through it
		for _, e := range crosses {
			s.record(e.z, e.a, e.b)
			for _, i := range [2]int{e.a, e.b} {
				seg := s.segments[i]
				if !slices.Contains(touchers, seg) {
					touchers = append(touchers, seg)
				}
				if seg.node != nil && !seg.endsAt(pos) && !slices.Contains(passers, seg) {
					passers = append(passers, seg)
				}
			}
		}
		for _, seg := range passers {
			s.status.Remove(seg.node)
		}

		// advance the sweep; reinserting the passers now re-derives their
		// order past the crossing from the slope tie-break
		s.status.pos = pos

		// only newly adjacent pairs can intersect before the next event
		for _, seg := range append(append([]*sweepSegment{}, passers...), starters...) {
			n := s.status.Insert(seg)
			if prev := n.Prev(); prev != nil {
				s.probe(prev.sweepSegment, n.sweepSegment)
			}
			if next := n.Next(); next != nil {
				s.probe(n.sweepSegment, next.sweepSegment)
			}
		}
		for _, pair := range probes {
			s.probe(pair[0], pair[1])
		}

		// all segments meeting the sweep line at this position: those with an
		// event here plus the active ones passing through it. Any two of them
		// intersect at this position but may never become adjacent, such as a
		// segment ending where another starts, or a pair separated by a
		// collinear run
		incident := touchers
		if n := s.status.findAt(pos); n != nil {
			for prev := n.Prev(); prev != nil && equal(prev.yAt(pos), pos.Y); prev = prev.Prev() {
				n = prev
			}
			for ; n != nil && equal(n.yAt(pos), pos.Y); n = n.Next() {
				if !slices.Contains(incident, n.sweepSegment) {
					incident = append(incident, n.sweepSegment)
				}
			}
		}
		for i := 0; i < len(incident); i++ {
			for j := i + 1; j < len(incident); j++ {
				s.probe(incident[i], incident[j])
			}
		}

		if s.flush() && s.stopAtFirst {
			break // halted, the partial result set is still returned
		}
	}
	return s.results
}

// probe tests a segment pair for intersection. Intersections at the current
// position are recorded into the event, intersections ahead of the sweep are
// pushed onto the queue so that the status order downstream accounts for the
// crossing, and late discoveries behind the sweep merge into the result entry
// at their coordinate.
func (s *sweeper) probe(a, b *sweepSegment) {
	if a.seg == b.seg {
		return
	}
	pair := segmentPair{a.seg, b.seg}
	if pair.b < pair.a {
		pair.a, pair.b = pair.b, pair.a
	}
	if s.handled[pair] {
		return
	}
	s.handled[pair] = true

	z, ok := Intersect(s.segments[pair.a].Line, s.segments[pair.b].Line)
	if !ok {
		return
	}
	if s.ignoreEndpoints && !z.IsOverlap &&
		s.segments[pair.a].endsAt(z.Point) && s.segments[pair.b].endsAt(z.Point) {
		return
	}

	if cmp := comparePoints(z.Single(), s.status.pos); 0 < cmp {
		s.queue.Push(&sweepEvent{Point: z.Single(), kind: eventCross, a: pair.a, b: pair.b, z: z})
	} else if cmp == 0 {
		s.record(z, pair.a, pair.b)
	} else {
		s.recordBehind(z, pair.a, pair.b)
	}
}

// record accumulates an intersection into the current event: point results at
// the same coordinate merge their segment identifiers, overlaps are kept per
// pair.
func (s *sweeper) record(z Intersection, a, b int) {
	if z.IsOverlap {
		overlap := z.Overlap
		s.overlaps = append(s.overlaps, Result{Point: overlap.Start, Overlap: &overlap, Segments: []int{a, b}})
		return
	}
	if s.pointIDs == nil {
		s.point = z.Point
		s.pointIDs = map[int]bool{}
	}
	s.pointIDs[a] = true
	s.pointIDs[b] = true
}

// recordBehind folds an intersection discovered behind the sweep into the
// already emitted results, keeping them keyed by coordinate and in ascending
// order. This happens when a pair through an earlier event point only becomes
// adjacent once the segments between them have ended.
func (s *sweeper) recordBehind(z Intersection, a, b int) {
	s.behind = true
	if z.IsOverlap {
		overlap := z.Overlap
		i := 0
		for i < len(s.results) {
			r := s.results[i]
			if cmp := comparePoints(r.Point, overlap.Start); 0 < cmp {
				break
			} else if cmp == 0 && r.Overlap != nil &&
				(a < r.Segments[0] || a == r.Segments[0] && b < r.Segments[1]) {
				break
			}
			i++
		}
		s.results = slices.Insert(s.results, i, Result{Point: overlap.Start, Overlap: &overlap, Segments: []int{a, b}})
		return
	}

	for i := range s.results {
		if r := &s.results[i]; r.Overlap == nil && r.Point.Equals(z.Point) {
			r.Segments = insertID(insertID(r.Segments, a), b)
			return
		}
	}
	i := 0
	for i < len(s.results) && comparePoints(s.results[i].Point, z.Point) < 0 {
		i++
	}
	s.results = slices.Insert(s.results, i, Result{Point: z.Point, Segments: []int{a, b}})
}

// flush appends the intersections recorded at the current event to the result
// set and returns whether any were recorded.
func (s *sweeper) flush() bool {
	recorded := s.behind
	s.behind = false
	if s.pointIDs != nil {
		ids := make([]int, 0, len(s.pointIDs))
		for i := range s.pointIDs {
			ids = append(ids, i)
		}
		sort.Ints(ids)
		s.results = append(s.results, Result{Point: s.point, Segments: ids})
		s.pointIDs = nil
		recorded = true
	}
	if 0 < len(s.overlaps) {
		sort.Slice(s.overlaps, func(i, j int) bool {
			a, b := s.overlaps[i].Segments, s.overlaps[j].Segments
			if a[0] != b[0] {
				return a[0] < b[0]
			}
			return a[1] < b[1]
		})
		s.results = append(s.results, s.overlaps...)
		s.overlaps = nil
		recorded = true
	}
	return recorded
}
