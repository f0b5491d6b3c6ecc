package analytic

import "github.com/vorot/roots/core"

// SolveCubicDepressed returns the real roots of x³ + p·x + q = 0,
// ascending.
//
// The discriminant D = q²/4 + p³/27 selects the branch:
//
//   - D < 0: three distinct real roots. Casus irreducibilis — the roots
//     are real but Cardano's formula passes through complex numbers, so
//     the trigonometric form is used instead: the three roots are
//     a·cos(φ + k·2π/3) for k ∈ {0, ±1}.
//   - D == 0: one simple root and (for p ≠ 0) one double root; the double
//     root is cbrt(q/2) and merges through Roots' duplicate elision when
//     the two coincide.
//   - D > 0: one real root via Cardano, using the real cube roots of the
//     two conjugate terms (core.Cbrt accepts negative arguments).
//
// Complexity: O(1).
func SolveCubicDepressed[F core.Float](p, q F) core.Roots[F] {
	if p == 0 {
		// x³ = -q has the single real root -cbrt(q).
		return core.Single(-core.Cbrt(q))
	}
	if q == 0 {
		// x·(x² + p) = 0.
		return SolveQuadratic[F](1, 0, p).Insert(0)
	}

	d := q*q/4 + p*p*p/27
	switch {
	case d < 0:
		// D < 0 forces p < 0, so the square root below is real.
		a := core.Sqrt(-4 * p / 3)
		phi := core.Acos(-4*q/(a*a*a)) / 3

		return core.Single(a * core.Cos(phi)).
			Insert(a * core.Cos(phi+core.TwoThirdsPi[F]())).
			Insert(a * core.Cos(phi-core.TwoThirdsPi[F]()))

	case d == 0:
		// One simple root plus a double root.
		qHalf := q / 2
		x1 := core.Cbrt(-qHalf) - core.Cbrt(qHalf)

		return core.Single(x1).Insert(core.Cbrt(qHalf))

	default:
		sqrtD := core.Sqrt(d)
		qHalf := q / 2

		return core.Single(core.Cbrt(sqrtD-qHalf) - core.Cbrt(sqrtD+qHalf))
	}
}

// SolveCubicNormalized returns the real roots of x³ + a·x² + b·x + c = 0,
// ascending.
//
// The substitution x = y - a/3 eliminates the quadratic term, producing
// the depressed cubic y³ + p·y + q = 0 with
//
//	p = b - a²/3
//	q = 2a³/27 - a·b/3 + c
//
// which SolveCubicDepressed handles; results are shifted back by -a/3.
//
// Complexity: O(1).
func SolveCubicNormalized[F core.Float](a, b, c F) core.Roots[F] {
	shift := a / 3
	p := b - a*shift
	q := 2*shift*shift*shift - shift*b + c

	depressed := SolveCubicDepressed(p, q)

	out := core.Empty[F]()
	for i := 0; i < depressed.Len(); i++ {
		out = out.Insert(depressed.At(i) - shift)
	}

	return out
}

// SolveCubic returns the real roots of a·x³ + b·x² + c·x + d = 0,
// ascending. Every real cubic has at least one real root, so a non-empty
// result is guaranteed whenever a != 0.
//
// a == 0 delegates to SolveQuadratic; otherwise the equation is divided
// through by a and handed to SolveCubicNormalized.
//
// Known limitation: when a is many orders of magnitude smaller than the
// other coefficients, the division amplifies rounding error in the
// intermediate discriminant terms. The algebraic form is kept as-is for
// result parity rather than reformulated.
//
// Complexity: O(1).
func SolveCubic[F core.Float](a, b, c, d F) core.Roots[F] {
	if a == 0 {
		// a = 0; b·x² + c·x + d = 0; solve the quadratic equation.
		return SolveQuadratic(b, c, d)
	}

	return SolveCubicNormalized(b/a, c/a, d/a)
}
