package iterative

import (
	"fmt"
	"io"

	"github.com/vorot/roots/core"
)

// Tolerance is the basic Convergency: one absolute epsilon for both axes
// and a hard iteration cap. Sufficient for most well-scaled problems; for
// roots far from the origin a relative rule would serve better.
type Tolerance[F core.Float] struct {
	// Eps is the absolute precision for both X and Y axes.
	Eps F
	// MaxIter is the maximum number of iterations.
	MaxIter int
}

// DefaultTolerance returns a Tolerance suitable for casual use:
// eps 1e-8 and at most 100 iterations.
func DefaultTolerance[F core.Float]() *Tolerance[F] {
	return &Tolerance[F]{Eps: 1e-8, MaxIter: 100}
}

// NewTolerance returns a Tolerance with the given settings.
// It panics if eps or maxIter is not positive; both would make every
// solver fail unconditionally, which is a programming error.
func NewTolerance[F core.Float](eps F, maxIter int) *Tolerance[F] {
	if eps <= 0 {
		panic("iterative: tolerance epsilon must be positive")
	}
	if maxIter <= 0 {
		panic("iterative: tolerance iteration limit must be positive")
	}

	return &Tolerance[F]{Eps: eps, MaxIter: maxIter}
}

// RootFound reports |y| < Eps.
func (t *Tolerance[F]) RootFound(y F) bool { return core.Abs(y) < t.Eps }

// Converged reports |x1-x2| < Eps.
func (t *Tolerance[F]) Converged(x1, x2 F) bool { return core.Abs(x1-x2) < t.Eps }

// IterationLimit reports iter >= MaxIter.
func (t *Tolerance[F]) IterationLimit(iter int) bool { return iter >= t.MaxIter }

// Trace decorates a Convergency with per-check logging and an iteration
// counter. Decisions are delegated unchanged, so wrapping does not alter
// which root a solver finds.
type Trace[F core.Float] struct {
	inner Convergency[F]
	w     io.Writer
	iter  int
}

// NewTrace wraps inner. Every check is reported to w; pass nil to only
// count iterations.
func NewTrace[F core.Float](inner Convergency[F], w io.Writer) *Trace[F] {
	if w == nil {
		w = io.Discard
	}

	return &Trace[F]{inner: inner, w: w}
}

// Count returns the highest iteration number seen so far.
func (t *Trace[F]) Count() int { return t.iter }

// Reset zeroes the iteration counter so the Trace can be reused across
// solver calls.
func (t *Trace[F]) Reset() { t.iter = 0 }

// RootFound implements Convergency.
func (t *Trace[F]) RootFound(y F) bool {
	fmt.Fprintf(t.w, "#%d check root %v\n", t.iter, y)

	return t.inner.RootFound(y)
}

// Converged implements Convergency.
func (t *Trace[F]) Converged(x1, x2 F) bool {
	fmt.Fprintf(t.w, "#%d check convergency %v-%v\n", t.iter, x1, x2)

	return t.inner.Converged(x1, x2)
}

// IterationLimit implements Convergency and advances the counter.
func (t *Trace[F]) IterationLimit(iter int) bool {
	fmt.Fprintf(t.w, "#%d check iteration limit %d\n", t.iter, iter)
	t.iter = iter

	return t.inner.IterationLimit(iter)
}
