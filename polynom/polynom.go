package polynom

import (
	"errors"

	"github.com/vorot/roots/analytic"
	"github.com/vorot/roots/core"
	"github.com/vorot/roots/iterative"
)

// ErrEmptyCoefficients is returned by Solve when no coefficients are
// given; a bare leading 1 is not an equation.
var ErrEmptyCoefficients = errors.New("polynom: no coefficients")

// Eval returns the value of the normalized polynomial
// x^n + a[0]·x^(n-1) + ... + a[n-1] at x, by Horner's scheme.
func Eval[F core.Float](a []F, x F) F {
	result := F(1)
	for _, c := range a {
		result = result*x + c
	}

	return result
}

// Derivative returns the coefficients of the normalized derivative of
// the polynomial given by a. The derivative of a monic polynomial is not
// monic, so every coefficient is scaled by 1/n; the roots are unaffected.
func Derivative[F core.Float](a []F) []F {
	if len(a) == 0 {
		return nil
	}

	n := F(len(a))
	d := make([]F, len(a)-1)
	for i := range d {
		d[i] = a[i] * F(len(a)-1-i) / n
	}

	return d
}

// Solve finds all real roots of the normalized polynomial
// x^n + a[0]·x^(n-1) + ... + a[n-1], ascending and deduplicated.
//
// Degrees up to four use the closed-form solvers and never fail. Higher
// degrees recurse on the derivative for the critical points, then run
// Brent on every bracket with a sign change; all real roots lie within
// the Cauchy bound, so the outermost brackets are closed with ±(1 +
// max|a[i]|). When an interval fails to converge the remaining intervals
// are still processed: the partial root list is returned together with
// the first failure.
func Solve[F core.Float](a []F, conv iterative.Convergency[F]) ([]F, error) {
	switch len(a) {
	case 0:
		return nil, ErrEmptyCoefficients
	case 1:
		return analytic.SolveLinear(F(1), a[0]).All(), nil
	case 2:
		return analytic.SolveQuadratic(F(1), a[0], a[1]).All(), nil
	case 3:
		return analytic.SolveCubic(F(1), a[0], a[1], a[2]).All(), nil
	case 4:
		return analytic.SolveQuartic(F(1), a[0], a[1], a[2], a[3]).All(), nil
	}

	var firstErr error
	critical, err := Solve(Derivative(a), conv)
	if err != nil {
		// Missing critical points may cost roots; keep going with what
		// was found.
		firstErr = err
	}

	// Bracket endpoints: the critical points, closed off by the Cauchy
	// bound on both sides. Between two consecutive endpoints the
	// polynomial is monotonic, so each bracket holds at most one root.
	bound := cauchyBound(a)
	points := make([]F, 0, len(critical)+2)
	points = append(points, -bound)
	for _, c := range critical {
		if c > points[len(points)-1] && c < bound {
			points = append(points, c)
		}
	}
	points = append(points, bound)

	roots := make([]F, 0, len(a))
	for i := 0; i+1 < len(points); i++ {
		x1, x2 := points[i], points[i+1]
		if Eval(a, x1)*Eval(a, x2) > 0 {
			continue
		}

		root, err := iterative.Brent(x1, x2, func(x F) F { return Eval(a, x) }, conv)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		// A root sitting exactly on a critical point is found from both
		// neighbouring brackets.
		if len(roots) > 0 && conv.Converged(roots[len(roots)-1], root) {
			continue
		}
		roots = append(roots, root)
	}

	return roots, firstErr
}

// cauchyBound returns 1 + max|a[i]|, outside of which a monic polynomial
// with coefficients a has no roots.
func cauchyBound[F core.Float](a []F) F {
	m := F(0)
	for _, c := range a {
		m = max(m, core.Abs(c))
	}

	return m + 1
}
