package contour

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Threshold helpers derive threshold lists from the data itself. Both ignore
// NaN and infinite samples, which contouring treats as below every
// threshold.

// EqualIntervals returns n thresholds that split the finite value range into
// n+1 equal intervals, excluding the minimum and maximum themselves.
// Contours at the extremes would either cover the whole grid or nothing.
func EqualIntervals(values []float64, n int) ([]float64, error) {
	finite, err := finiteValues(values, n)
	if err != nil {
		return nil, err
	}
	lo, hi := floats.Min(finite), floats.Max(finite)
	if lo == hi {
		return nil, fmt.Errorf("cannot derive thresholds from a constant field of %v", lo)
	}

	span := make([]float64, n+2)
	floats.Span(span, lo, hi)
	out := make([]float64, n)
	copy(out, span[1:n+1])
	return out, nil
}

// Quantiles returns n thresholds at evenly spaced quantiles of the finite
// values. Used as band edges they put roughly equal sample counts into each
// band, which keeps choropleth-style renderings balanced on skewed data.
// Heavily repeated values can yield repeated thresholds, which Isobands
// rejects; check the result when the data may be degenerate.
func Quantiles(values []float64, n int) ([]float64, error) {
	finite, err := finiteValues(values, n)
	if err != nil {
		return nil, err
	}
	sort.Float64s(finite)

	out := make([]float64, n)
	for i := range out {
		p := float64(i+1) / float64(n+1)
		out[i] = stat.Quantile(p, stat.Empirical, finite, nil)
	}
	return out, nil
}

func finiteValues(values []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("threshold count must be positive, got %d", n)
	}
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return nil, fmt.Errorf("no finite values to derive thresholds from")
	}
	return finite, nil
}
