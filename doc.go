// Package roots finds real roots of one-variable numerical equations —
// from closed-form polynomial solvers up to iterative searches over
// arbitrary continuous functions.
//
// 🚀 What is roots?
//
//	A small, allocation-conscious library that brings together:
//		• Analytical solvers: linear, quadratic, cubic and quartic equations
//		  (with depressed, normalized and biquadratic variants)
//		• Iterative solvers: secant, regula falsi, Newton-Raphson, Brent,
//		  inverse quadratic interpolation
//		• A general-degree polynomial solver built on derivative bracketing
//		• A companion-matrix eigenvalue fallback for high-degree polynomials
//
// ✨ Why choose roots?
//
//   - Only real roots, always ordered – multiple (double etc.) roots are
//     reported once
//   - Generic over float32 and float64 – one implementation, two precisions
//   - Pure functions – no global state, safe to call from any goroutine
//   - Customizable convergence – implement Convergency to control when an
//     iterative search succeeds or gives up
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — generic float abstraction & the ordered Roots container
//	analytic/  — closed-form solvers for degrees 1–4
//	iterative/ — Convergency-driven iterative root finders
//	polynom/   — general-degree polynomial solver (Sturm-style bracketing)
//	eigen/     — companion-matrix eigenvalue fallback (float64 only)
//
// Quick example:
//
//	rs := analytic.SolveQuadratic(1.0, 0.0, -1.0)
//	// rs.All() == []float64{-1, 1}
//
// Dive into the subpackage docs for formulas, precision notes and the
// exact contracts of each solver family.
//
//	go get github.com/vorot/roots
package roots
