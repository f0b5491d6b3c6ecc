package analytic

import "github.com/vorot/roots/core"

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0, ascending.
//
// a == 0 delegates to SolveLinear. Otherwise the discriminant Δ = b²-4ac
// decides: Δ < 0 yields no real roots, Δ == 0 one double root -b/2a, and
// Δ > 0 two distinct roots.
//
// The two-root branch does not evaluate (-b ± √Δ)/2a directly: whichever
// numerator has opposite signs between -b and ±√Δ nearly cancels when the
// coefficient magnitudes are extreme. Instead the sum -b ± √Δ that agrees
// in sign with -b is formed first, and each root is then produced from the
// identities x₁+x₂ = -b/a and x₁·x₂ = c/a using the largest available
// divisor (see https://people.csail.mit.edu/bkph/articles/Quadratics.pdf).
//
// Complexity: O(1).
func SolveQuadratic[F core.Float](a, b, c F) core.Roots[F] {
	if a == 0 {
		// a = 0; b·x + c = 0; solve the linear equation.
		return SolveLinear(b, c)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.Empty[F]()
	}

	a2 := 2 * a
	if discriminant == 0 {
		// Adding 0 turns the negative zero of -b/a2 (b == +0) into a
		// positive zero; any other value passes through unchanged.
		return core.Single(-b/a2 + 0)
	}

	sq := core.Sqrt(discriminant)

	// sameSign adds magnitudes; diffSign is the cancellation-prone sum.
	var sameSign, diffSign F
	if b < 0 {
		sameSign, diffSign = -b+sq, -b-sq
	} else {
		sameSign, diffSign = -b-sq, -b+sq
	}

	var x1, x2 F
	if core.Abs(sameSign) > core.Abs(a2) {
		c2 := 2 * c
		if core.Abs(diffSign) > core.Abs(a2) {
			// 2a is the smallest divisor; use the product identity for both.
			x1, x2 = c2/sameSign, c2/diffSign
		} else {
			// diffSign is the smallest divisor; avoid it.
			x1, x2 = c2/sameSign, sameSign/a2
		}
	} else {
		// 2a is the greatest divisor; the direct formula is safe.
		x1, x2 = diffSign/a2, sameSign/a2
	}

	if x1 < x2 {
		return core.Single(x1).Insert(x2)
	}

	return core.Single(x2).Insert(x1)
}
