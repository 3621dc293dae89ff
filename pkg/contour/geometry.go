package contour

// Point is a coordinate pair in output space. Before the origin and step
// transform, coordinates are grid coordinates: sample (i, j) sits at
// (i+0.5, j+0.5) and contour crossings land on the integer grid lines
// between samples.
type Point struct {
	X float64
	Y float64
}

// Ring is a closed sequence of points where the first point repeats as the
// last. Exterior rings wind counter-clockwise on screen (y grows downward),
// hole rings wind clockwise.
type Ring []Point

// LineString is a sequence of connected points. Lines produced by contouring
// are always closed because the virtual border closes every ring.
type LineString []Point

// Polygon is one exterior ring and the holes punched into it.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// MultiPolygon is a set of disjoint polygons.
type MultiPolygon []Polygon

// MultiLineString is a set of line strings.
type MultiLineString []LineString
