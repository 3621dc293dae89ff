package contour

// Options configures a Builder.
type Options struct {
	// Width is the number of grid columns. Must be positive.
	Width int

	// Height is the number of grid rows. Must be positive.
	Height int

	// Smooth interpolates crossing points linearly between the two samples
	// of each crossed edge. When false, crossings snap to cell-edge
	// midpoints and contours come out blocky.
	Smooth bool

	// XOrigin and YOrigin translate output coordinates. The grid point
	// (0, 0) maps to (XOrigin, YOrigin).
	XOrigin float64
	YOrigin float64

	// XStep and YStep scale grid coordinates to output coordinates, the
	// spacing between adjacent samples on each axis. Zero means 1. A
	// negative step mirrors the output along that axis and flips ring
	// winding with it; callers choosing one re-orient the result
	// themselves.
	XStep float64
	YStep float64
}

// DefaultOptions returns options for a width x height grid with smoothing
// enabled, origin (0, 0) and unit steps.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
		Smooth: true,
		XStep:  1,
		YStep:  1,
	}
}
