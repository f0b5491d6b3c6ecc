package analytic

import "github.com/vorot/roots/core"

// SolveLinear returns the real roots of a·x + b = 0.
//
// Degenerate inputs are handled, not rejected:
//
//   - a == 0 && b == 0: every x solves 0 = 0; the canonical representative
//     root 0 is returned.
//   - a == 0 && b != 0: no solution.
//
// Complexity: O(1).
func SolveLinear[F core.Float](a, b F) core.Roots[F] {
	if a == 0 {
		if b == 0 {
			return core.Single[F](0)
		}

		return core.Empty[F]()
	}

	return core.Single(-b / a)
}
