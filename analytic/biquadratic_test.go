package analytic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vorot/roots/analytic"
)

// TestSolveBiquadratic covers the u = x² mapping and both fast paths.
func TestSolveBiquadratic(t *testing.T) {
	// All coefficients zero: 0 = 0 with representative root 0.
	assert.Equal(t, []float32{0}, analytic.SolveBiquadratic[float32](0, 0, 0).All())

	// x⁴ + 1 = 0: both u-roots are complex.
	assert.Empty(t, analytic.SolveBiquadratic[float32](1, 0, 1).All())

	// x⁴ - 1 = 0: u = 1 maps to ±1, u = -1 contributes nothing.
	assert.Equal(t, []float64{-1, 1}, analytic.SolveBiquadratic(1.0, 0.0, -1.0).All())

	// x⁴ - 5x² + 4 = (x²-1)(x²-4).
	assert.Equal(t, []float64{-2, -1, 1, 2}, analytic.SolveBiquadratic(1.0, -5.0, 4.0).All())

	// a = 0 fast path: -x² + 4 = 0 is a plain quadratic in x.
	assert.Equal(t, []float64{-2, 2}, analytic.SolveBiquadratic(0.0, -1.0, 4.0).All())

	// c = 0 fast path: x²·(x² - 4) = 0 keeps the explicit 0 root.
	assert.Equal(t, []float64{-2, 0, 2}, analytic.SolveBiquadratic(1.0, -4.0, 0.0).All())
}
