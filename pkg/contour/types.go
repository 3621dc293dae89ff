package contour

// Contour is the filled polygon set enclosing every sample at or above one
// threshold.
type Contour struct {
	threshold float64
	geometry  MultiPolygon
}

// Threshold returns the iso value this contour was computed for.
func (c *Contour) Threshold() float64 {
	return c.threshold
}

// Geometry returns the polygons of this contour, largest first. The result
// is empty when no sample reaches the threshold.
func (c *Contour) Geometry() MultiPolygon {
	return c.geometry
}

// Line is the set of isolines for one threshold, the bare ring geometry of
// the matching Contour without polygon grouping.
type Line struct {
	threshold float64
	geometry  MultiLineString
}

// Threshold returns the iso value this line set was computed for.
func (l *Line) Threshold() float64 {
	return l.threshold
}

// Geometry returns the isolines, each one a closed line string.
func (l *Line) Geometry() MultiLineString {
	return l.geometry
}

// Band is the filled polygon set covering every sample v with
// Min() <= v < Max(), the region between two consecutive band edges.
type Band struct {
	min      float64
	max      float64
	geometry MultiPolygon
}

// Min returns the inclusive lower edge of the band.
func (b *Band) Min() float64 {
	return b.min
}

// Max returns the exclusive upper edge of the band.
func (b *Band) Max() float64 {
	return b.max
}

// Geometry returns the polygons of this band. Regions above Max() appear as
// holes.
func (b *Band) Geometry() MultiPolygon {
	return b.geometry
}
