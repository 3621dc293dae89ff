package marching

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ccwSquare(lo, hi float64) Ring {
	return Ring{{hi, hi}, {hi, lo}, {lo, lo}, {lo, hi}, {hi, hi}}
}

func cwSquare(lo, hi float64) Ring {
	return Ring{{lo, lo}, {hi, lo}, {hi, hi}, {lo, hi}, {lo, lo}}
}

func TestAssemblePolygonsEmpty(t *testing.T) {
	if got := AssemblePolygons(nil); len(got) != 0 {
		t.Errorf("AssemblePolygons(nil) = %v, want empty", got)
	}
}

func TestAssemblePolygonsHoleAssignment(t *testing.T) {
	exterior := ccwSquare(0, 4)
	hole := cwSquare(1, 2)

	got := AssemblePolygons([]Ring{hole, exterior})
	want := []Polygon{{Exterior: exterior, Holes: []Ring{hole}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("polygons mismatch (-want +got):\n%s", diff)
	}
}

// TestAssemblePolygonsNested checks that holes attach to the smallest
// containing exterior: an island inside a lake inside a larger region keeps
// its own hole instead of donating it to the outer exterior.
func TestAssemblePolygonsNested(t *testing.T) {
	outer := ccwSquare(0, 10)
	lake := cwSquare(1, 9)
	island := ccwSquare(3, 7)
	pond := cwSquare(4, 6)

	got := AssemblePolygons([]Ring{pond, island, lake, outer})
	want := []Polygon{
		{Exterior: outer, Holes: []Ring{lake}},
		{Exterior: island, Holes: []Ring{pond}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("polygons mismatch (-want +got):\n%s", diff)
	}
}

// TestAssemblePolygonsOrphanHole checks that a hole-wound ring with no
// containing exterior is promoted to an exterior of its own, reversed to the
// exterior winding.
func TestAssemblePolygonsOrphanHole(t *testing.T) {
	orphan := cwSquare(0, 2)

	got := AssemblePolygons([]Ring{orphan})
	if len(got) != 1 || len(got[0].Holes) != 0 {
		t.Fatalf("AssemblePolygons() = %v, want one polygon without holes", got)
	}
	if area := signedArea(got[0].Exterior); area <= 0 {
		t.Errorf("promoted exterior has area %v, want positive", area)
	}
	if diff := cmp.Diff(reversed(orphan), got[0].Exterior); diff != "" {
		t.Errorf("promoted exterior mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemblePolygonsOrdering(t *testing.T) {
	small := ccwSquare(20, 22)
	large := ccwSquare(0, 10)

	got := AssemblePolygons([]Ring{small, large})
	if len(got) != 2 {
		t.Fatalf("AssemblePolygons() returned %d polygons, want 2", len(got))
	}
	if diff := cmp.Diff(large, got[0].Exterior); diff != "" {
		t.Errorf("largest polygon must come first (-want +got):\n%s", diff)
	}
}

// TestAssemblePolygonsBoundaryHole checks that a hole touching its exterior
// is still assigned to it rather than promoted.
func TestAssemblePolygonsBoundaryHole(t *testing.T) {
	exterior := ccwSquare(0, 4)
	hole := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}

	got := AssemblePolygons([]Ring{exterior, hole})
	if len(got) != 1 {
		t.Fatalf("AssemblePolygons() returned %d polygons, want 1", len(got))
	}
	if len(got[0].Holes) != 1 {
		t.Errorf("boundary-touching hole was not assigned")
	}
}
