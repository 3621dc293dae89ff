package contour

// GeoJSON adapters for contour results. The mapping is pure data shaping:
// Contour and Band become MultiPolygon features, Line becomes a
// MultiLineString feature, and thresholds travel in the feature properties.
// Marshal the returned values with encoding/json.

// Feature is a GeoJSON Feature.
type Feature struct {
	Type       string             `json:"type"`
	Geometry   Geometry           `json:"geometry"`
	Properties map[string]float64 `json:"properties"`
}

// Geometry is a GeoJSON geometry object. Coordinates holds the nesting that
// matches Type.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection wraps features in a FeatureCollection.
func NewFeatureCollection(features ...Feature) FeatureCollection {
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// ToGeoJSON converts the contour to a MultiPolygon feature with a
// "threshold" property.
func (c *Contour) ToGeoJSON() Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "MultiPolygon",
			Coordinates: multiPolygonCoordinates(c.geometry),
		},
		Properties: map[string]float64{"threshold": c.threshold},
	}
}

// ToGeoJSON converts the isolines to a MultiLineString feature with a
// "threshold" property.
func (l *Line) ToGeoJSON() Feature {
	coords := make([][][]float64, len(l.geometry))
	for i, line := range l.geometry {
		coords[i] = pointCoordinates(line)
	}
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "MultiLineString",
			Coordinates: coords,
		},
		Properties: map[string]float64{"threshold": l.threshold},
	}
}

// ToGeoJSON converts the band to a MultiPolygon feature with "min" and
// "max" properties.
func (b *Band) ToGeoJSON() Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "MultiPolygon",
			Coordinates: multiPolygonCoordinates(b.geometry),
		},
		Properties: map[string]float64{"min": b.min, "max": b.max},
	}
}

func multiPolygonCoordinates(mp MultiPolygon) [][][][]float64 {
	coords := make([][][][]float64, len(mp))
	for i, polygon := range mp {
		rings := make([][][]float64, 0, 1+len(polygon.Holes))
		rings = append(rings, pointCoordinates(polygon.Exterior))
		for _, hole := range polygon.Holes {
			rings = append(rings, pointCoordinates(hole))
		}
		coords[i] = rings
	}
	return coords
}

func pointCoordinates[S ~[]Point](points S) [][]float64 {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.X, p.Y}
	}
	return coords
}
