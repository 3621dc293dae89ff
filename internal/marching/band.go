package marching

// AssembleBand builds the polygons of the region between two thresholds from
// the rings traced at the band's lower and upper edges. For bands the role
// of a ring follows from nesting depth rather than winding: a ring enclosed
// by an even number of other rings bounds band area, a ring at odd depth
// bounds a hole (an above-upper island, or band area nested inside such an
// island, and so on alternating). Rings are re-oriented to the winding their
// role requires and then grouped like AssemblePolygons, except that a hole
// with no enclosing exterior is dropped: a region entirely at or above the
// band's upper edge traces coincident rings for both edges, which classify
// as mutual holes and must cancel to empty geometry rather than survive as
// a degenerate polygon. Rings needing a flip are copied, so inputs can be
// shared between adjacent bands.
func AssembleBand(lower, upper []Ring) []Polygon {
	rings := make([]Ring, 0, len(lower)+len(upper))
	rings = append(rings, lower...)
	rings = append(rings, upper...)
	if len(rings) == 0 {
		return nil
	}

	depth := make([]int, len(rings))
	for i := range rings {
		for j := range rings {
			if i == j {
				continue
			}
			if contains(rings[j], rings[i]) != -1 {
				depth[i]++
			}
		}
	}

	oriented := make([]Ring, len(rings))
	for i, r := range rings {
		exterior := depth[i]%2 == 0
		if exterior == (signedArea(r) > 0) {
			oriented[i] = r
		} else {
			oriented[i] = reversed(r)
		}
	}
	return assemble(oriented, false)
}
