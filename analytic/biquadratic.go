package analytic

import "github.com/vorot/roots/core"

// SolveBiquadratic returns the real roots of the even quartic
// a·x⁴ + b·x² + c = 0, ascending.
//
// Fast paths:
//
//   - a == 0: b·x² + c = 0 is a plain quadratic in x.
//   - c == 0: x²·(a·x² + b) = 0 contributes an explicit 0 root plus the
//     quadratic factor's roots.
//
// Otherwise the substitution u = x² reduces the equation to
// a·u² + b·u + c = 0. Each nonnegative u-root maps back to ±√u (0 maps to
// the single root 0); negative u-roots contribute no real x.
//
// Complexity: O(1).
func SolveBiquadratic[F core.Float](a, b, c F) core.Roots[F] {
	if a == 0 {
		// a = 0; b·x² + c = 0; solve the quadratic equation.
		return SolveQuadratic[F](b, 0, c)
	}
	if c == 0 {
		// c = 0; x²·(a·x² + b) = 0.
		return SolveQuadratic[F](a, 0, b).Insert(0)
	}

	out := core.Empty[F]()
	uRoots := SolveQuadratic(a, b, c)
	for i := 0; i < uRoots.Len(); i++ {
		u := uRoots.At(i)
		switch {
		case u > 0:
			sq := core.Sqrt(u)
			out = out.Insert(-sq).Insert(sq)
		case u == 0:
			out = out.Insert(0)
		}
	}

	return out
}
