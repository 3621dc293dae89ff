package contour

import "fmt"

// ErrInvalidDimensions indicates a grid whose shape is not positive or whose
// value buffer does not match Width*Height.
type ErrInvalidDimensions struct {
	Width  int
	Height int
	Values int
}

func (e *ErrInvalidDimensions) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("grid dimensions must be positive, got %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("grid of %dx%d requires %d values, got %d",
		e.Width, e.Height, e.Width*e.Height, e.Values)
}

// ErrEmptyThresholds indicates that no thresholds were supplied where at
// least one is required.
type ErrEmptyThresholds struct{}

func (e *ErrEmptyThresholds) Error() string {
	return "at least one threshold is required"
}

// ErrInvalidBandThresholds indicates a band edge list that cannot describe a
// sequence of bands.
type ErrInvalidBandThresholds struct {
	Count  int
	Reason string
}

func (e *ErrInvalidBandThresholds) Error() string {
	return fmt.Sprintf("invalid band thresholds (%d given): %s", e.Count, e.Reason)
}
