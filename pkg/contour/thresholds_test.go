package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIntervals(t *testing.T) {
	values := []float64{0, 1, 0.5, 0.25, 0.75}

	got, err := EqualIntervals(values, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.75}, got, 1e-12)
}

func TestEqualIntervalsIgnoresNonFinite(t *testing.T) {
	values := []float64{0, math.NaN(), 4, math.Inf(1), math.Inf(-1)}

	got, err := EqualIntervals(values, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2}, got, 1e-12)
}

func TestEqualIntervalsErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		n      int
	}{
		{"zero count", []float64{0, 1}, 0},
		{"no finite values", []float64{math.NaN(), math.Inf(1)}, 2},
		{"constant field", []float64{3, 3, 3}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EqualIntervals(tt.values, tt.n)
			assert.Error(t, err)
		})
	}
}

func TestQuantiles(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	got, err := Quantiles(values, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Less(t, got[0], got[1])
	assert.Less(t, got[1], got[2])
	// The middle threshold is the median of 0..99.
	assert.InDelta(t, 49.5, got[1], 1)
}

func TestQuantilesSkewedData(t *testing.T) {
	values := make([]float64, 0, 110)
	for i := 0; i < 100; i++ {
		values = append(values, 1)
	}
	for i := 0; i < 10; i++ {
		values = append(values, 1000)
	}

	got, err := Quantiles(values, 2)
	require.NoError(t, err)
	// Nearly all mass sits at 1, so both quantile thresholds do too.
	assert.Equal(t, []float64{1, 1}, got)
}

func TestQuantilesErrors(t *testing.T) {
	_, err := Quantiles(nil, 2)
	assert.Error(t, err)

	_, err = Quantiles([]float64{1, 2, 3}, -1)
	assert.Error(t, err)
}

// TestDerivedThresholdsFeedContours wires a derived threshold list straight
// into contouring.
func TestDerivedThresholdsFeedContours(t *testing.T) {
	values := testGrid(1, 3, 5, 3, 7)

	thresholds, err := EqualIntervals(values, 3)
	require.NoError(t, err)

	b := mustBuilder(t, DefaultOptions(10, 10))
	contours, err := b.Contours(values, thresholds)
	require.NoError(t, err)
	require.Len(t, contours, 3)
	for _, c := range contours {
		assert.NotEmpty(t, c.Geometry(), "threshold %v", c.Threshold())
	}
}
