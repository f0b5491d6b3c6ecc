package iterative

import (
	"github.com/vorot/roots/analytic"
	"github.com/vorot/roots/core"
)

// parabola is the quadratic a·x² + b·x + c interpolating three samples.
type parabola[F core.Float] struct {
	a, b, c F
}

// parabolaThrough restores the quadratic's coefficients from three
// samples with pairwise distinct x (Lagrange interpolation, expanded).
func parabolaThrough[F core.Float](p1, p2, p3 Sample[F]) parabola[F] {
	denom := (p1.X - p2.X) * (p1.X - p3.X) * (p2.X - p3.X)

	return parabola[F]{
		a: (p3.X*(p2.Y-p1.Y) + p2.X*(p1.Y-p3.Y) + p1.X*(p3.Y-p2.Y)) / denom,
		b: (p1.X*p1.X*(p2.Y-p3.Y) + p3.X*p3.X*(p1.Y-p2.Y) + p2.X*p2.X*(p3.Y-p1.Y)) / denom,
		c: (p2.X*p2.X*(p3.X*p1.Y-p1.X*p3.Y) +
			p2.X*(p1.X*p1.X*p3.Y-p3.X*p3.X*p1.Y) +
			p1.X*p3.X*(p3.X-p1.X)*p2.Y) / denom,
	}
}

// InverseQuadratic finds a root of f inside [a, b] by fitting a parabola
// through the bracket ends and an interior sample, then stepping to the
// parabola's root inside the bracket.
//
// Faster than linear interpolation for polynomial-like functions; when
// the fitted parabola has no root inside the bracket the method falls
// back to the false-position point.
//
// Returns ErrNoBracketing when f(a) and f(b) share a sign.
func InverseQuadratic[F core.Float](a, b F, f Func[F], conv Convergency[F]) (F, error) {
	x1, x2 := a, b
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	s1 := Sample[F]{X: x1, Y: f(x1)}
	if conv.RootFound(s1.Y) {
		return s1.X, nil
	}
	s2 := Sample[F]{X: x2, Y: f(x2)}
	if conv.RootFound(s2.Y) {
		return s2.X, nil
	}
	if !s1.Bracketed(s2) {
		return 0, ErrNoBracketing
	}

	// The first interior sample comes from a false-position step.
	interval := Interval[F]{Begin: s1, End: s2}
	x3 := interval.Middle()
	if interval.Converged(conv) {
		return x3, nil
	}
	s3 := Sample[F]{X: x3, Y: f(x3)}
	if conv.RootFound(s3.Y) {
		return s3.X, nil
	}

	for iter := 0; ; {
		p := parabolaThrough(interval.Begin, interval.End, s3)

		x3 = interval.Middle()
		for _, root := range analytic.SolveQuadratic(p.a, p.b, p.c).All() {
			if interval.ContainsX(root) {
				x3 = root
				break
			}
		}

		s3 = Sample[F]{X: x3, Y: f(x3)}
		if conv.RootFound(s3.Y) {
			return s3.X, nil
		}

		// Narrow the interval around whichever half still brackets.
		if s3.Bracketed(interval.Begin) {
			interval.End = s3
		} else {
			interval.Begin = s3
		}

		if interval.Converged(conv) {
			return interval.Middle(), nil
		}

		iter++
		if conv.IterationLimit(iter) {
			return 0, ErrNoConvergence
		}
	}
}
