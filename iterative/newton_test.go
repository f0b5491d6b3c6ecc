package iterative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorot/roots/iterative"
)

func TestNewtonRaphson(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }
	df := func(x float64) float64 { return 2 * x }
	conv := iterative.NewTolerance(1e-15, 30)

	root, err := iterative.NewtonRaphson(10.0, f, df, conv)
	require.NoError(t, err)
	assert.InDelta(t, 1, root, 1e-14)

	root, err = iterative.NewtonRaphson(-10.0, f, df, conv)
	require.NoError(t, err)
	assert.InDelta(t, -1, root, 1e-14)
}

// TestNewtonRaphson_StationaryStart: the derivative vanishes at the
// starting point, so the solver nudges it by one unit and lands exactly
// on the root.
func TestNewtonRaphson_StationaryStart(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }
	df := func(x float64) float64 { return 2 * x }

	root, err := iterative.NewtonRaphson(0.0, f, df, iterative.NewTolerance(1e-15, 30))
	require.NoError(t, err)
	assert.Equal(t, 1.0, root)
}

// TestNewtonRaphson_ZeroDerivative: x² + 1 has no real root; from x = 1
// the first step lands exactly on the stationary point x = 0, where the
// method cannot continue.
func TestNewtonRaphson_ZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	_, err := iterative.NewtonRaphson(1.0, f, df, iterative.NewTolerance(1e-15, 30))
	assert.ErrorIs(t, err, iterative.ErrZeroDerivative)
}

// TestNewtonRaphson_NoConvergence: the classic 2-cycle of Newton's method
// on x³ - 2x + 2 started at 0 (0 → 1 → 0 → ...).
func TestNewtonRaphson_NoConvergence(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 2 }
	df := func(x float64) float64 { return 3*x*x - 2 }

	_, err := iterative.NewtonRaphson(0.0, f, df, iterative.NewTolerance(1e-15, 30))
	assert.ErrorIs(t, err, iterative.ErrNoConvergence)
}
