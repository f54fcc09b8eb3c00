package fd

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadShape is returned when values do not fill the requested shape.
	ErrBadShape = errors.New("fd: invalid shape")

	// ErrTooFewSamples means the differentiated axis has fewer than three
	// samples, so the centered stencil overlaps itself.
	ErrTooFewSamples = errors.New("fd: axis needs at least 3 samples")

	// ErrBadStep is returned for a grid step that is not finite and positive.
	ErrBadStep = errors.New("fd: grid step must be finite and positive")
)

// MinSamples is the shortest axis the three-point stencil is meaningful on.
const MinSamples = 3

// Validate reports whether f can be differentiated along axis with the given
// step without degenerating. The operators themselves never check.
func Validate(f Field, axis Axis, step float64) error {
	n := f.NumX
	if axis == Dir2 {
		n = f.NumY
	}
	if n < MinSamples {
		return fmt.Errorf("%s has %d samples: %w", axis, n, ErrTooFewSamples)
	}
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return fmt.Errorf("step %g along %s: %w", step, axis, ErrBadStep)
	}
	return nil
}
