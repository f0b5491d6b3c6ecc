// Package analytic solves polynomial equations of degree 1–4 in closed
// form, returning all real roots at once.
//
// Solvers form a strict delegation chain, leaves first:
//
//	SolveLinear
//	  └─ SolveQuadratic
//	       ├─ SolveCubicDepressed ─ SolveCubicNormalized ─ SolveCubic
//	       ├─ SolveBiquadratic
//	       └─ SolveQuarticDepressed ─ SolveQuartic
//
// A zero leading coefficient at any level is a valid input, not an error:
// it routes the equation to the strictly simpler solver below. Every
// function is total — there is no error type anywhere in this package —
// and pure: no state, no allocation beyond the four-slot core.Roots
// value, O(1) arithmetic per call.
//
// Returned roots are ascending and deduplicated; a multiplicity-k root
// appears once. Complex roots are never reported.
//
// Precision notes:
//
//   - SolveQuadratic avoids catastrophic cancellation by never dividing by
//     the smallest of 2a, -b±√Δ (see the quadratic.go comments); it
//     resolves coefficient magnitude ratios spanning 1e±20.
//   - SolveCubic with a leading coefficient many orders of magnitude
//     smaller than the rest amplifies rounding error in the discriminant.
//     This is an accepted limitation of the algebraic form, kept for
//     result parity; route truly degenerate inputs through the quadratic
//     coefficients instead.
//   - SolveQuartic classifies root multiplicity from the discriminant
//     before depressing, because the generic resolvent-cubic path divides
//     by quantities that vanish exactly at multiple-root configurations.
//     In single precision the discriminant itself may underflow, letting
//     such inputs fall through to the (less accurate) generic path; this
//     precision-dependent behavior is intentional.
//
// Typical precision of the returned roots is about 1e-13 relative in
// float64 and 5e-7 in float32.
package analytic
