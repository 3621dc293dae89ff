package marching

// A cell is the unit square spanned by four adjacent samples. Cell (x, y)
// has corners (x,y), (x+1,y), (x+1,y+1) and (x,y+1); with the border
// sentinel, valid cells run from (-1,-1) to (width-1, height-1). Each cell
// classifies to a 4-bit case code with one bit per corner at or above the
// threshold.
const (
	cornerTopLeft     = 1
	cornerTopRight    = 2
	cornerBottomRight = 4
	cornerBottomLeft  = 8
)

// caseAt classifies cell (x, y) against the threshold.
func (g gridView) caseAt(x, y int, threshold float64) uint8 {
	var code uint8
	if g.above(x, y, threshold) {
		code |= cornerTopLeft
	}
	if g.above(x+1, y, threshold) {
		code |= cornerTopRight
	}
	if g.above(x+1, y+1, threshold) {
		code |= cornerBottomRight
	}
	if g.above(x, y+1, threshold) {
		code |= cornerBottomLeft
	}
	return code
}

// edge identifies one side of a cell.
type edge uint8

const (
	edgeTop edge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// opposite returns the same edge as seen from the neighbouring cell across
// it.
func (e edge) opposite() edge {
	return (e + 2) % 4
}

// segment is one entry-to-exit move through a cell. Moves keep the region at
// or above the threshold on the left of travel, so rings around above-regions
// come out counter-clockwise on screen (y grows downward) and rings around
// enclosed below-regions come out clockwise.
type segment struct {
	entry edge
	exit  edge
}

// segments maps a case code to its moves. The saddle codes 5 and 10 are left
// empty here because their connectivity depends on the cell centre; see
// cellSegments.
var segments = [16][]segment{
	1:  {{edgeLeft, edgeTop}},
	2:  {{edgeTop, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeRight, edgeBottom}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeLeft, edgeBottom}},
	8:  {{edgeBottom, edgeLeft}},
	9:  {{edgeBottom, edgeTop}},
	11: {{edgeBottom, edgeRight}},
	12: {{edgeRight, edgeLeft}},
	13: {{edgeRight, edgeTop}},
	14: {{edgeTop, edgeLeft}},
}

// Saddle connectivity variants. The "above" variants join the two diagonal
// above-corners through the cell centre; the "below" variants keep them as
// two separate contour arcs.
var (
	saddle5Above  = []segment{{edgeRight, edgeTop}, {edgeLeft, edgeBottom}}
	saddle5Below  = []segment{{edgeLeft, edgeTop}, {edgeRight, edgeBottom}}
	saddle10Above = []segment{{edgeTop, edgeLeft}, {edgeBottom, edgeRight}}
	saddle10Below = []segment{{edgeTop, edgeRight}, {edgeBottom, edgeLeft}}
)

// cellSegments returns the moves for a cell, resolving saddle cases with the
// centre estimate from saddleAbove. Saddles never occur on border cells
// because sentinel corners are always below the threshold.
func (g gridView) cellSegments(code uint8, x, y int, threshold float64) []segment {
	switch code {
	case cornerTopLeft | cornerBottomRight:
		if g.saddleAbove(x, y, threshold) {
			return saddle5Above
		}
		return saddle5Below
	case cornerTopRight | cornerBottomLeft:
		if g.saddleAbove(x, y, threshold) {
			return saddle10Above
		}
		return saddle10Below
	default:
		return segments[code]
	}
}

// saddleAbove estimates the cell centre as the mean of the four corner
// samples and reports whether it sits at or above the threshold, with the
// same tie-break as the corners.
func (g gridView) saddleAbove(x, y int, threshold float64) bool {
	mean := (g.at(x, y) + g.at(x+1, y) + g.at(x+1, y+1) + g.at(x, y+1)) / 4
	return mean >= threshold
}
