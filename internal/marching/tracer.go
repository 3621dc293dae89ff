package marching

import (
	"errors"
	"math"
)

// ErrInconsistentTrace guards the ring walk against a case transition that
// does not match the edge the walk entered through. It indicates a defect in
// the case tables rather than bad input.
var ErrInconsistentTrace = errors.New("marching: inconsistent case transition during trace")

// Tracer extracts closed contour rings from a grid, one threshold at a time.
// The visited-crossing arena is retained between traces, so one Tracer can
// serve a whole threshold list without reallocating. A Tracer is not safe
// for concurrent use.
type Tracer struct {
	grid    gridView
	smooth  bool
	visited []bool
}

// NewTracer creates a tracer over width*height row-major samples. When
// smooth is true, crossing points are interpolated linearly between sample
// values; otherwise they snap to the midpoints of cell edges.
func NewTracer(values []float64, width, height int, smooth bool) *Tracer {
	return &Tracer{
		grid:    newGridView(values, width, height),
		smooth:  smooth,
		visited: make([]bool, 2*(width+2)*(height+2)),
	}
}

// Trace extracts every distinct closed ring for the threshold. Rings around
// regions at or above the threshold wind counter-clockwise on screen, rings
// around enclosed below-regions wind clockwise. Every boundary crossing
// belongs to exactly one ring, and rings are found in row-major scan order
// of their first crossing, so output is deterministic for a given grid.
func (t *Tracer) Trace(threshold float64) ([]Ring, error) {
	t.reset()
	var rings []Ring
	for y := -1; y < t.grid.height; y++ {
		for x := -1; x < t.grid.width; x++ {
			code := t.grid.caseAt(x, y, threshold)
			if code == 0 || code == 15 {
				continue
			}
			for _, seg := range t.grid.cellSegments(code, x, y, threshold) {
				if t.visited[t.crossingKey(x, y, seg.entry)] {
					continue
				}
				ring, err := t.walk(x, y, seg.entry, threshold)
				if err != nil {
					return nil, err
				}
				rings = append(rings, ring)
			}
		}
	}
	return rings, nil
}

// reset clears the visited arena for the next trace.
func (t *Tracer) reset() {
	clear(t.visited)
}

// walk traces one ring starting at the entry crossing of cell (x, y) and
// follows exits through neighbouring cells until it returns to its start.
// The starting crossing is emitted first and repeated as the closing point.
func (t *Tracer) walk(x, y int, entry edge, threshold float64) (Ring, error) {
	start := t.crossingKey(x, y, entry)
	t.visited[start] = true
	ring := Ring{t.crossingPoint(x, y, entry, threshold)}
	for steps := len(t.visited); steps > 0; steps-- {
		exit, ok := t.exitFor(x, y, entry, threshold)
		if !ok {
			return nil, ErrInconsistentTrace
		}
		ring = append(ring, t.crossingPoint(x, y, exit, threshold))
		key := t.crossingKey(x, y, exit)
		if key == start {
			return ring, nil
		}
		t.visited[key] = true
		switch exit {
		case edgeTop:
			y--
		case edgeRight:
			x++
		case edgeBottom:
			y++
		case edgeLeft:
			x--
		}
		entry = exit.opposite()
	}
	return nil, ErrInconsistentTrace
}

// exitFor looks up the exit prescribed for entering cell (x, y) through the
// entry edge.
func (t *Tracer) exitFor(x, y int, entry edge, threshold float64) (edge, bool) {
	code := t.grid.caseAt(x, y, threshold)
	for _, seg := range t.grid.cellSegments(code, x, y, threshold) {
		if seg.entry == entry {
			return seg.exit, true
		}
	}
	return 0, false
}

// crossingKey identifies the threshold crossing on an edge of cell (x, y) by
// the lower-indexed sample of the crossed pair and the pair orientation, so
// the two cells sharing an edge agree on the key.
func (t *Tracer) crossingKey(x, y int, e edge) int {
	px, py, orient := x, y, 0
	switch e {
	case edgeBottom:
		py = y + 1
	case edgeLeft:
		orient = 1
	case edgeRight:
		px, orient = x+1, 1
	}
	return ((py+1)*(t.grid.width+2)+(px+1))*2 + orient
}

// crossingPoint locates the threshold crossing on an edge of cell (x, y).
// The crossing sits on the grid line between the two samples of the edge:
// at the midpoint when smoothing is off, or slid toward whichever sample is
// closer to the threshold when it is on.
func (t *Tracer) crossingPoint(x, y int, e edge, threshold float64) Point {
	switch e {
	case edgeTop:
		return Point{X: t.across(x, y, true, threshold), Y: float64(y) + 0.5}
	case edgeBottom:
		return Point{X: t.across(x, y+1, true, threshold), Y: float64(y) + 1.5}
	case edgeLeft:
		return Point{X: float64(x) + 0.5, Y: t.across(y, x, false, threshold)}
	default: // edgeRight
		return Point{X: float64(x) + 1.5, Y: t.across(y, x+1, false, threshold)}
	}
}

// across computes the varying coordinate of a crossing between samples a and
// a+1 along one axis (horizontal pairs vary in x, vertical pairs in y),
// holding the other index fixed. Crossings against the virtual border, or
// with a non-finite interpolation factor, always use the edge midpoint.
func (t *Tracer) across(a, other int, horizontal bool, threshold float64) float64 {
	mid := float64(a) + 1
	if !t.smooth {
		return mid
	}
	var va, vb float64
	if horizontal {
		if a < 0 || a+1 >= t.grid.width {
			return mid
		}
		va, vb = t.grid.at(a, other), t.grid.at(a+1, other)
	} else {
		if a < 0 || a+1 >= t.grid.height {
			return mid
		}
		va, vb = t.grid.at(other, a), t.grid.at(other, a+1)
	}
	f := (threshold - va) / (vb - va)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return mid
	}
	return float64(a) + 0.5 + f
}
