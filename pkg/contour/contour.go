// Package contour computes isolines, filled contour polygons and isobands
// from rectangular grids of scalar samples using marching squares.
//
// The grid is a flat row-major slice of float64 values. Conceptually each
// sample occupies a unit cell centred at (i+0.5, j+0.5); contours are traced
// through the dual grid of sample corners, and a virtual border of minimal
// values around the grid guarantees that every contour closes. Results are
// deterministic: the same grid, options and thresholds always produce the
// same geometry.
//
// Build a Builder for a grid shape once, then feed it values and thresholds:
//
//	builder, err := contour.NewBuilder(contour.DefaultOptions(width, height))
//	if err != nil {
//		return err
//	}
//	contours, err := builder.Contours(values, []float64{0.5})
package contour

import (
	"github.com/beetlebugorg/isogrid/internal/marching"
)

// Builder computes contours for one grid shape. A Builder is immutable
// after creation and every build call is a pure function of its inputs, so
// a Builder may be reused across grids of the same shape. Build calls on the
// same Builder must not run concurrently.
type Builder struct {
	opts Options
}

// NewBuilder validates the options and returns a Builder for them.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &ErrInvalidDimensions{Width: opts.Width, Height: opts.Height}
	}
	if opts.XStep == 0 {
		opts.XStep = 1
	}
	if opts.YStep == 0 {
		opts.YStep = 1
	}
	return &Builder{opts: opts}, nil
}

// Contours computes one filled contour per threshold. Each Contour encloses
// the region where the field is at or above its threshold, with enclosed
// below-regions as holes.
func (b *Builder) Contours(values, thresholds []float64) ([]Contour, error) {
	if err := b.validate(values); err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return nil, &ErrEmptyThresholds{}
	}

	tracer := marching.NewTracer(values, b.opts.Width, b.opts.Height, b.opts.Smooth)
	out := make([]Contour, 0, len(thresholds))
	for _, threshold := range thresholds {
		rings, err := tracer.Trace(threshold)
		if err != nil {
			return nil, err
		}
		b.transform(rings)
		out = append(out, Contour{
			threshold: threshold,
			geometry:  toMultiPolygon(marching.AssemblePolygons(rings)),
		})
	}
	return out, nil
}

// Lines computes one isoline set per threshold: the same rings as Contours,
// without polygon grouping.
func (b *Builder) Lines(values, thresholds []float64) ([]Line, error) {
	if err := b.validate(values); err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return nil, &ErrEmptyThresholds{}
	}

	tracer := marching.NewTracer(values, b.opts.Width, b.opts.Height, b.opts.Smooth)
	out := make([]Line, 0, len(thresholds))
	for _, threshold := range thresholds {
		rings, err := tracer.Trace(threshold)
		if err != nil {
			return nil, err
		}
		b.transform(rings)
		out = append(out, Line{
			threshold: threshold,
			geometry:  toMultiLineString(rings),
		})
	}
	return out, nil
}

// Isobands computes the filled regions between consecutive band edges.
// Thresholds must be strictly increasing; n edges yield n-1 bands. Each edge
// is traced once and shared by the bands on either side of it.
func (b *Builder) Isobands(values, thresholds []float64) ([]Band, error) {
	if err := b.validate(values); err != nil {
		return nil, err
	}
	if len(thresholds) < 2 {
		return nil, &ErrInvalidBandThresholds{
			Count:  len(thresholds),
			Reason: "at least two band edges are required",
		}
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, &ErrInvalidBandThresholds{
				Count:  len(thresholds),
				Reason: "band edges must be strictly increasing",
			}
		}
	}

	tracer := marching.NewTracer(values, b.opts.Width, b.opts.Height, b.opts.Smooth)
	edges := make([][]marching.Ring, len(thresholds))
	for i, threshold := range thresholds {
		rings, err := tracer.Trace(threshold)
		if err != nil {
			return nil, err
		}
		b.transform(rings)
		edges[i] = cleanRings(rings)
	}

	bands := make([]Band, 0, len(thresholds)-1)
	for i := 0; i+1 < len(thresholds); i++ {
		bands = append(bands, Band{
			min:      thresholds[i],
			max:      thresholds[i+1],
			geometry: toMultiPolygon(marching.AssembleBand(edges[i], edges[i+1])),
		})
	}
	return bands, nil
}

// TraceRings computes the raw closed rings for a single threshold in grid
// coordinates, without smoothing, transformation or polygon grouping. It is
// the low-level operation underneath Contours and Lines.
func TraceRings(values []float64, width, height int, threshold float64) ([]Ring, error) {
	if width <= 0 || height <= 0 || len(values) != width*height {
		return nil, &ErrInvalidDimensions{Width: width, Height: height, Values: len(values)}
	}
	rings, err := marching.NewTracer(values, width, height, false).Trace(threshold)
	if err != nil {
		return nil, err
	}
	out := make([]Ring, len(rings))
	for i, r := range rings {
		out[i] = toRing(r)
	}
	return out, nil
}

func (b *Builder) validate(values []float64) error {
	if len(values) != b.opts.Width*b.opts.Height {
		return &ErrInvalidDimensions{
			Width:  b.opts.Width,
			Height: b.opts.Height,
			Values: len(values),
		}
	}
	return nil
}

// transform maps grid coordinates to output coordinates in place. Freshly
// traced rings are never shared, so mutation is safe here.
func (b *Builder) transform(rings []marching.Ring) {
	if b.opts.XOrigin == 0 && b.opts.YOrigin == 0 && b.opts.XStep == 1 && b.opts.YStep == 1 {
		return
	}
	for _, ring := range rings {
		for i, p := range ring {
			ring[i] = marching.Point{
				X: p.X*b.opts.XStep + b.opts.XOrigin,
				Y: p.Y*b.opts.YStep + b.opts.YOrigin,
			}
		}
	}
}

// cleanRings drops consecutive duplicate points that smoothing can produce
// on band edges and discards rings degenerated below four points.
func cleanRings(rings []marching.Ring) []marching.Ring {
	out := make([]marching.Ring, 0, len(rings))
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		deduped := marching.Ring{ring[0]}
		for _, p := range ring[1:] {
			if p != deduped[len(deduped)-1] {
				deduped = append(deduped, p)
			}
		}
		if len(deduped) > 3 {
			out = append(out, deduped)
		}
	}
	return out
}

func toRing(r marching.Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

func toMultiPolygon(polys []marching.Polygon) MultiPolygon {
	out := make(MultiPolygon, len(polys))
	for i, p := range polys {
		holes := make([]Ring, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = toRing(h)
		}
		if len(holes) == 0 {
			holes = nil
		}
		out[i] = Polygon{Exterior: toRing(p.Exterior), Holes: holes}
	}
	return out
}

func toMultiLineString(rings []marching.Ring) MultiLineString {
	out := make(MultiLineString, len(rings))
	for i, r := range rings {
		out[i] = LineString(toRing(r))
	}
	return out
}
