package marching

import (
	"math"
	"sort"
)

// Polygon is one exterior ring with zero or more holes. The exterior winds
// counter-clockwise on screen (positive signed area), holes wind clockwise.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// AssemblePolygons groups traced rings into polygons. Winding decides the
// role of each ring: positive-area rings become exteriors and negative-area
// rings become holes of the smallest exterior containing them. A hole with
// no enclosing exterior is reversed and promoted to an exterior of its own.
// Polygons come out ordered by descending exterior area. Input rings are
// grouped and shared, never mutated.
func AssemblePolygons(rings []Ring) []Polygon {
	return assemble(rings, true)
}

// assemble does the grouping. promoteOrphans controls what happens to a
// hole ring with no enclosing exterior: contour assembly promotes it to an
// exterior, band assembly drops it because there an orphan hole only arises
// from coincident edge rings that cancel each other out.
func assemble(rings []Ring, promoteOrphans bool) []Polygon {
	type measured struct {
		ring Ring
		area float64
	}
	byArea := make([]measured, 0, len(rings))
	for _, r := range rings {
		byArea = append(byArea, measured{ring: r, area: signedArea(r)})
	}
	sort.SliceStable(byArea, func(i, j int) bool {
		return math.Abs(byArea[i].area) > math.Abs(byArea[j].area)
	})

	var polygons []Polygon
	for _, m := range byArea {
		if m.area > 0 {
			polygons = append(polygons, Polygon{Exterior: m.ring})
			continue
		}
		// Exteriors were appended largest first, so searching from the
		// tail finds the smallest container and resolves nesting
		// innermost-first. Boundary contact counts as containment.
		assigned := false
		for i := len(polygons) - 1; i >= 0; i-- {
			if contains(polygons[i].Exterior, m.ring) != -1 {
				polygons[i].Holes = append(polygons[i].Holes, m.ring)
				assigned = true
				break
			}
		}
		if !assigned && promoteOrphans {
			polygons = append(polygons, Polygon{Exterior: reversed(m.ring)})
		}
	}
	return polygons
}
