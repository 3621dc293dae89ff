package marching

import "math"

// outside is the value read for any sample position beyond the grid. It is
// lower than every finite threshold, so the grid behaves as if it were
// surrounded by a one-sample border of minimal values and every ring closes
// instead of running off the edge.
var outside = math.Inf(-1)

// gridView is read-only access to width*height samples stored row-major.
type gridView struct {
	width  int
	height int
	values []float64
}

func newGridView(values []float64, width, height int) gridView {
	return gridView{width: width, height: height, values: values}
}

// at returns the sample at (x, y), or the border sentinel when (x, y) falls
// outside [0,width) x [0,height).
func (g gridView) at(x, y int) float64 {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return outside
	}
	return g.values[y*g.width+x]
}

// above reports whether the sample at (x, y) sits at or above the threshold.
// Equality counts as above. NaN samples compare false, so they are below
// every threshold.
func (g gridView) above(x, y int, threshold float64) bool {
	return g.at(x, y) >= threshold
}
