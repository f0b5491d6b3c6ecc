package iterative

import (
	"errors"

	"github.com/vorot/roots/core"
)

var (
	// ErrNoConvergence is returned when a solver hits the iteration limit
	// before any stopping rule fires.
	ErrNoConvergence = errors.New("iterative: no convergence within the iteration limit")

	// ErrNoBracketing is returned by bracketing solvers when f has the same
	// sign at both ends of the initial interval.
	ErrNoBracketing = errors.New("iterative: initial values do not bracket zero")

	// ErrZeroDerivative is returned when the method lands on a flat spot it
	// cannot step away from.
	ErrZeroDerivative = errors.New("iterative: zero derivative, cannot continue")
)

// Func is the scalar function whose root is sought.
type Func[F core.Float] func(F) F

// Convergency decides when an iterative search has finished, either by
// finding a root or by running out of iterations. Implementations may
// keep state (see Trace).
type Convergency[F core.Float] interface {
	// RootFound reports whether y is close enough to zero.
	RootFound(y F) bool
	// Converged reports whether x1 and x2 are close enough to each other.
	Converged(x1, x2 F) bool
	// IterationLimit reports whether no more iterations are desired.
	IterationLimit(iter int) bool
}

// Sample is a single evaluation of the target function.
type Sample[F core.Float] struct {
	X, Y F
}

// Bracketed reports whether s and o straddle zero, i.e. whether a
// continuous function through both points must cross the axis.
func (s Sample[F]) Bracketed(o Sample[F]) bool {
	return (s.Y <= 0 && o.Y >= 0) || (s.Y >= 0 && o.Y <= 0)
}

// Interval is a bracket around a root, maintained so that Begin.X <= End.X.
type Interval[F core.Float] struct {
	Begin, End Sample[F]
}

// Middle returns the false-position point of the interval: where the
// secant through both samples crosses the axis.
func (iv Interval[F]) Middle() F {
	return (iv.Begin.X*iv.End.Y - iv.End.X*iv.Begin.Y) / (iv.End.Y - iv.Begin.Y)
}

// ContainsX reports whether x lies inside the interval, ends included.
func (iv Interval[F]) ContainsX(x F) bool {
	return iv.Begin.X <= x && x <= iv.End.X
}

// Converged reports whether the interval has shrunk below the
// convergency's x-axis resolution.
func (iv Interval[F]) Converged(conv Convergency[F]) bool {
	return conv.Converged(iv.Begin.X, iv.End.X)
}
