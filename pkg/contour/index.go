package contour

import "github.com/dhconnelly/rtreego"

// Bounds is an axis-aligned bounding box in output coordinates.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Intersects reports whether two bounding boxes overlap. Touching boxes
// count as intersecting.
func (b Bounds) Intersects(other Bounds) bool {
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}

func (b Bounds) expand(other Bounds) Bounds {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
	return b
}

// Index answers viewport queries over a set of contours with an R-tree,
// O(log n) per query instead of a linear scan over every contour. Build it
// once after contouring a grid and reuse it for every pan or zoom.
//
// Example:
//
//	contours, _ := builder.Contours(values, thresholds)
//	idx := contour.NewIndex(contours)
//	visible := idx.InBounds(viewport)
type Index struct {
	contours []Contour
	rtree    *rtreego.Rtree
	bounds   Bounds
	indexed  int
}

// indexedContour wraps a contour for R-tree storage.
type indexedContour struct {
	contour Contour
	bounds  Bounds
}

// Bounds implements the rtreego.Spatial interface. Rectangles need a
// non-zero extent on both axes, so degenerate boxes are padded by a small
// epsilon.
func (e *indexedContour) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.MinX, e.bounds.MinY}

	const epsilon = 1e-9
	width := e.bounds.MaxX - e.bounds.MinX
	height := e.bounds.MaxY - e.bounds.MinY
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// NewIndex builds an index over the contours. Contours with empty geometry
// carry no spatial extent and never match a query.
func NewIndex(contours []Contour) *Index {
	idx := &Index{contours: contours}

	// 2D, min 25 and max 50 children per node.
	rtree := rtreego.NewTree(2, 25, 50)
	first := true
	for _, c := range contours {
		cb, ok := geometryBounds(c.geometry)
		if !ok {
			continue
		}
		rtree.Insert(&indexedContour{contour: c, bounds: cb})
		idx.indexed++
		if first {
			idx.bounds = cb
			first = false
		} else {
			idx.bounds = idx.bounds.expand(cb)
		}
	}
	if idx.indexed > 0 {
		idx.rtree = rtree
	}
	return idx
}

// InBounds returns the contours whose bounding box intersects the viewport,
// in no particular order.
func (idx *Index) InBounds(viewport Bounds) []Contour {
	if idx.rtree == nil {
		return idx.inBoundsLinear(viewport)
	}

	const epsilon = 1e-9
	width := viewport.MaxX - viewport.MinX
	height := viewport.MaxY - viewport.MinY
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}
	queryRect, _ := rtreego.NewRect(rtreego.Point{viewport.MinX, viewport.MinY}, []float64{width, height})

	spatials := idx.rtree.SearchIntersect(queryRect)
	result := make([]Contour, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(*indexedContour).contour)
	}
	return result
}

// inBoundsLinear scans every contour when no R-tree exists.
func (idx *Index) inBoundsLinear(viewport Bounds) []Contour {
	var result []Contour
	for _, c := range idx.contours {
		if cb, ok := geometryBounds(c.geometry); ok && viewport.Intersects(cb) {
			result = append(result, c)
		}
	}
	return result
}

// Count returns the number of contours with spatial extent in the index.
func (idx *Index) Count() int {
	return idx.indexed
}

// Bounds returns the bounding box covering every indexed contour. It is the
// zero Bounds when nothing was indexed.
func (idx *Index) Bounds() Bounds {
	return idx.bounds
}

// geometryBounds computes the bounding box of a MultiPolygon from its
// exterior rings. Holes lie inside their exterior and cannot extend it.
func geometryBounds(mp MultiPolygon) (Bounds, bool) {
	var b Bounds
	found := false
	for _, polygon := range mp {
		for _, p := range polygon.Exterior {
			if !found {
				b = Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				found = true
				continue
			}
			b = b.expand(Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
		}
	}
	return b, found
}
