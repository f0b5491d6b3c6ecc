// Package core provides the two value types every solver in this module
// is built on: a generic floating-point abstraction and the ordered,
// deduplicated Roots container.
//
// # Float
//
// Float constrains a type parameter to the real floating-point widths
// (float32, float64, and named types of either). Every solver function is
// generic over Float, so the whole library works identically in single and
// double precision without duplication. The transcendental helpers (Sqrt,
// Cbrt, Acos, Cos, Abs, Pow) compute through float64 and convert back,
// which is exact for every small-integer constant the solvers rely on.
// Cbrt is defined for negative arguments and returns the real negative
// cube root — Cardano's formula depends on it.
//
// # Roots
//
// Roots is the solution set of a polynomial equation over the reals: at
// most four strictly increasing values, stored inline (no heap). A root of
// multiplicity k appears exactly once. Sets are grown one element at a
// time with Insert, which keeps the ascending order and silently drops
// exact duplicates; the analytical branches deliberately produce repeated
// roots through identical arithmetic, so duplicate elision uses value
// equality, not an epsilon.
//
// Inserting a fifth distinct value panics: a real polynomial of degree ≤4
// has at most four real roots, so overflow is unreachable through the
// solver call graph and is treated as a programmer error.
package core
