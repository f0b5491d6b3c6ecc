package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float constrains the working precision of a solver to a real
// floating-point type. All solver functions in this module take their
// scalar type through this constraint.
type Float interface {
	constraints.Float
}

// Sqrt returns the square root of x in the working precision.
func Sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

// Cbrt returns the real cube root of x. Unlike pow(x, 1/3), it is defined
// for negative arguments: Cbrt(-8) == -2.
func Cbrt[F Float](x F) F { return F(math.Cbrt(float64(x))) }

// Acos returns the arccosine of x, in radians.
func Acos[F Float](x F) F { return F(math.Acos(float64(x))) }

// Cos returns the cosine of the radian argument x.
func Cos[F Float](x F) F { return F(math.Cos(float64(x))) }

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}

// Pow returns x**n in the working precision.
func Pow[F Float](x, n F) F { return F(math.Pow(float64(x), float64(n))) }

// Pi returns π rounded to the working precision.
func Pi[F Float]() F { return F(math.Pi) }

// TwoThirdsPi returns 2π/3, the phase shift between the three roots in the
// trigonometric branch of the depressed cubic solver.
func TwoThirdsPi[F Float]() F { return F(2 * math.Pi / 3) }
