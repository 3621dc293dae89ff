package marching

// Point is a position in grid coordinates. Samples sit at half-integer
// positions (sample (i, j) at (i+0.5, j+0.5)), so contour crossings land on
// the integer grid lines between them.
type Point struct {
	X float64
	Y float64
}

// Ring is a closed sequence of points where the first point repeats as the
// last.
type Ring []Point

// signedArea returns twice the signed area of a closed ring under the
// y-down shoelace convention: positive for rings winding counter-clockwise
// on screen (exteriors), negative for holes.
func signedArea(ring Ring) float64 {
	var area float64
	for i := 1; i < len(ring); i++ {
		area += ring[i-1].Y*ring[i].X - ring[i-1].X*ring[i].Y
	}
	return area
}

// reversed returns a reversed copy of the ring. The winding flips, the
// geometry does not.
func reversed(ring Ring) Ring {
	out := make(Ring, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// contains reports where a candidate hole sits relative to a ring: 1 when a
// vertex lies strictly inside, -1 when a vertex lies strictly outside, 0
// when every vertex lies on the ring boundary. The first vertex with a
// definite verdict decides.
func contains(ring, hole Ring) int {
	for _, p := range hole {
		if c := ringContains(ring, p); c != 0 {
			return c
		}
	}
	return 0
}

// ringContains locates a point relative to a closed ring by even-odd ray
// casting: 1 strictly inside, -1 strictly outside, 0 on the boundary.
func ringContains(ring Ring, p Point) int {
	verdict := -1
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		pi, pj := ring[i], ring[j]
		if segmentContains(pi, pj, p) {
			return 0
		}
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			verdict = -verdict
		}
		j = i
	}
	return verdict
}

// segmentContains reports whether p lies on the segment from a to b.
func segmentContains(a, b, p Point) bool {
	if !collinear(a, b, p) {
		return false
	}
	if a.X == b.X {
		return within(a.Y, p.Y, b.Y)
	}
	return within(a.X, p.X, b.X)
}

func collinear(a, b, p Point) bool {
	return (b.X-a.X)*(p.Y-a.Y) == (p.X-a.X)*(b.Y-a.Y)
}

func within(p, q, r float64) bool {
	return p <= q && q <= r || r <= q && q <= p
}
