package analytic

import "github.com/vorot/roots/core"

// SolveQuarticDepressed returns the real roots of the depressed quartic
// y⁴ + p·y² + q·y + r = 0, ascending.
//
// Fast paths:
//
//   - q == 0: the equation is biquadratic in y.
//   - r == 0: y·(y³ + p·y + q) = 0 contributes an explicit 0 root plus the
//     depressed cubic factor's roots.
//
// Otherwise Ferrari's method applies. The resolvent cubic
//
//	y³ + (5p/2)·y² + (2p² - r)·y + (p³/2 - p·r/2 - q²/8) = 0
//
// always has at least one real root; its largest real root y0 factors the
// quartic into two real quadratics when p + 2·y0 > 0:
//
//	(y² + s·y + p + y0 - q/2s)·(y² - s·y + p + y0 + q/2s),  s = √(p+2y0)
//
// whose roots merge into the result. If p + 2·y0 <= 0 all four roots are
// complex and the result is empty.
//
// Accuracy degrades near multiple-root configurations (q/2s divides by a
// near-zero quantity); SolveQuartic routes exact multiplicities to closed
// forms before reaching this function.
//
// Complexity: O(1).
func SolveQuarticDepressed[F core.Float](p, q, r F) core.Roots[F] {
	if q == 0 {
		// q = 0; y⁴ + p·y² + r = 0; solve the biquadratic equation.
		return SolveBiquadratic[F](1, p, r)
	}
	if r == 0 {
		// r = 0; y·(y³ + p·y + q) = 0.
		return SolveCubicDepressed(p, q).Insert(0)
	}

	// Largest real root of the resolvent cubic (Roots is ascending).
	resolvent := SolveCubicNormalized(5*p/2, 2*p*p-r, (p*p*p-p*r-q*q/4)/2)
	y0 := resolvent.At(resolvent.Len() - 1)

	pPlus2y0 := p + 2*y0
	if pPlus2y0 <= 0 {
		return core.Empty[F]()
	}

	s := core.Sqrt(pPlus2y0)
	q0a := p + y0 - q/(2*s)
	q0b := p + y0 + q/(2*s)

	out := core.Empty[F]()
	firstPair := SolveQuadratic[F](1, s, q0a)
	for i := 0; i < firstPair.Len(); i++ {
		out = out.Insert(firstPair.At(i))
	}
	secondPair := SolveQuadratic[F](1, -s, q0b)
	for i := 0; i < secondPair.Len(); i++ {
		out = out.Insert(secondPair.At(i))
	}

	return out
}

// SolveQuartic returns the real roots of
// a4·x⁴ + a3·x³ + a2·x² + a1·x + a0 = 0, ascending.
//
// Fast paths route degenerate coefficient patterns to simpler solvers:
// a4 == 0 is a cubic, a0 == 0 factors out x, and a3 == a1 == 0 is
// biquadratic.
//
// For the general case the quartic's discriminant Δ and the auxiliary
// quantities P, R, Δ0 and D are evaluated first to classify root
// multiplicity (https://en.wikipedia.org/wiki/Quartic_function):
//
//   - Δ == 0, Δ0 == 0, D == 0: quadruple root -a3/4a4.
//   - Δ == 0, Δ0 == 0, D != 0: a triple root and a simple root. The triple
//     root is the unique zero of the remainder of dividing the quartic by
//     its second derivative; the closed form below was derived once with
//     SymPy and is kept verbatim — its sign and ordering choices are easy
//     to get subtly wrong:
//
//     x0 = (-72·a²e + 10·a·c² - 3·b²c) / (9·(8·a²d - 4·a·b·c + b³))
//
//     (a..e denote a4..a0). The simple root follows from the root sum.
//   - Δ == 0, Δ0 != 0, D == 0, P > 0, R == 0: two complex-conjugate double
//     roots; no real roots at all.
//   - Anything else: depress via x = y - a3/4a4, with p, q and r built
//     from P, R and the a4 powers so that exact coefficient cancellations
//     survive as exact zeros, and solve with SolveQuarticDepressed,
//     shifting the results back.
//
// Classifying before depressing matters because the generic path divides
// by quantities that are exactly zero algebraically — but only nearly zero
// in floating point — at multiple-root configurations, producing spurious
// or missing roots there. In single precision Δ itself may underflow and
// miss the classification; that imprecision is accepted rather than
// patched over.
//
// Complexity: O(1).
func SolveQuartic[F core.Float](a4, a3, a2, a1, a0 F) core.Roots[F] {
	// Handle non-standard cases first.
	switch {
	case a4 == 0:
		// a4 = 0; a3·x³ + a2·x² + a1·x + a0 = 0; solve the cubic equation.
		return SolveCubic(a3, a2, a1, a0)
	case a0 == 0:
		// a0 = 0; x·(a4·x³ + a3·x² + a2·x + a1) = 0.
		return SolveCubic(a4, a3, a2, a1).Insert(0)
	case a3 == 0 && a1 == 0:
		// Only even powers left; solve the biquadratic equation.
		return SolveBiquadratic(a4, a2, a0)
	}

	discriminant := 256*a4*a4*a4*a0*a0*a0 -
		192*a4*a4*a3*a1*a0*a0 -
		128*a4*a4*a2*a2*a0*a0 +
		144*a4*a4*a2*a1*a1*a0 -
		27*a4*a4*a1*a1*a1*a1 +
		144*a4*a3*a3*a2*a0*a0 -
		6*a4*a3*a3*a1*a1*a0 -
		80*a4*a3*a2*a2*a1*a0 +
		18*a4*a3*a2*a1*a1*a1 +
		16*a4*a2*a2*a2*a2*a0 -
		4*a4*a2*a2*a2*a1*a1 -
		27*a3*a3*a3*a3*a0*a0 +
		18*a3*a3*a3*a2*a1*a0 -
		4*a3*a3*a3*a1*a1*a1 -
		4*a3*a3*a2*a2*a2*a0 +
		a3*a3*a2*a2*a1*a1

	pp := 8*a4*a2 - 3*a3*a3
	rr := a3*a3*a3 + 8*a4*a4*a1 - 4*a4*a3*a2
	delta0 := a2*a2 - 3*a3*a1 + 12*a4*a0
	dd := 64*a4*a4*a4*a0 -
		16*a4*a4*a2*a2 +
		16*a4*a3*a3*a2 -
		16*a4*a4*a3*a1 -
		3*a3*a3*a3*a3

	switch {
	case discriminant == 0 && delta0 == 0 && dd == 0:
		// All four roots coincide.
		return core.Single(-a3 / (4 * a4))

	case discriminant == 0 && delta0 == 0:
		// Triple root x0 plus a simple root.
		x0 := (-72*a4*a4*a0 + 10*a4*a2*a2 - 3*a3*a3*a2) /
			(9 * (8*a4*a4*a1 - 4*a4*a3*a2 + a3*a3*a3))

		return core.Single(x0).Insert(-(a3/a4 + 3*x0))

	case discriminant == 0 && dd == 0 && pp > 0 && rr == 0:
		// Two complex-conjugate double roots; nothing real to report.
		return core.Empty[F]()

	default:
		// Depress via x = y + subst. The depressed coefficients are formed
		// from the quantities above instead of normalizing by a4 first:
		// q equals R/(8·a4³), so an exact cancellation in R survives as an
		// exact zero and routes to the depressed solver's biquadratic fast
		// path, which owns the two-real-double-root configuration. Dividing
		// by a4 term by term leaves q a rounding error away from zero there
		// and the Ferrari path then loses both factor quadratics.
		subst := -a3 / (4 * a4)
		a4Pow2 := a4 * a4
		a4Pow3 := a4Pow2 * a4
		a4Pow4 := a4Pow2 * a4Pow2

		p := pp / (8 * a4Pow2)
		q := rr / (8 * a4Pow3)
		r := (256*a4Pow3*a0 - 64*a4Pow2*a3*a1 + 16*a4*a3*a3*a2 - 3*a3*a3*a3*a3) /
			(256 * a4Pow4)

		depressed := SolveQuarticDepressed(p, q, r)

		out := core.Empty[F]()
		for i := 0; i < depressed.Len(); i++ {
			out = out.Insert(depressed.At(i) + subst)
		}

		return out
	}
}
