// Copyright 2020 Aleksandr Demakin. All rights reserved.

package reals

import (
	"math"

	mu "github.com/avdva/numtower/internal/mathutil"
)

const (
	// above this |x| asin is evaluated through the half-angle identity.
	asinHalfAngle = 0.5
	// from this |x| atan is evaluated as acos(1/sqrt(1+x²)).
	atanAcosBound = 0.8
)

// Sin returns the sine of r radians.
func Sin(r Real) Real {
	return Real(sincosSeries(fmod(float64(r), 2*pi), paritySin))
}

// Cos returns the cosine of r radians.
func Cos(r Real) Real {
	return Real(sincosSeries(fmod(float64(r), 2*pi), parityCos))
}

// Tan returns sin(r)/cos(r).
// Near the poles the result has a large magnitude, or is infinite.
func Tan(r Real) Real {
	return Sin(r) / Cos(r)
}

// Asin returns the arcsine of r in [-π/2, π/2].
// Asin panics if |r| > 1.
func Asin(r Real) Real {
	checkUnit("reals.Asin", r)
	return Real(asin(float64(r)))
}

// Acos returns the arccosine of r as π/2 - asin(r).
// Acos panics if |r| > 1.
func Acos(r Real) Real {
	checkUnit("reals.Acos", r)
	return Real(pi/2 - asin(float64(r)))
}

// asin evaluates the series directly for small |x|, and as
// sign(x)·(π/2 - 2·asin(sqrt((1-|x|)/2))) closer to ±1, where the series converges slowly.
func asin(x float64) float64 {
	ax := mu.AbsFloat(x)
	if ax <= asinHalfAngle {
		return asinSeries(x)
	}
	half := float64(Sqrt(Real((1 - ax) / 2)))
	return sign(x) * (pi/2 - 2*asinSeries(half))
}

// Atan returns the arctangent of r in [-π/2, π/2].
// The series is used for |r| < 0.8, sign(r)·acos(1/sqrt(1+r²)) otherwise.
func Atan(r Real) Real {
	x := float64(r)
	if math.IsNaN(x) {
		return r
	}
	if mu.AbsFloat(x) < atanAcosBound {
		return Real(atanSeries(x))
	}
	return Sign(r) * Acos(1/Sqrt(1+Square(r)))
}

// Atan2 returns the angle of the point (x, y) as sign(y)*atan(|y/x|).
// The result is always in [-π/2, π/2], the quadrant of x is not taken into account.
func Atan2(y, x Real) Real {
	if x == 0 {
		return Sign(y) * Real(pi/2)
	}
	return Sign(y) * Atan(Abs(y/x))
}

// Sinh returns the hyperbolic sine of r.
// Unlike Sin, the argument is not reduced modulo 2π: sinh is not periodic on the reals.
func Sinh(r Real) Real {
	return Real(sincoshSeries(float64(r), paritySin))
}

// Cosh returns the hyperbolic cosine of r.
// The argument is not reduced modulo 2π, see Sinh.
func Cosh(r Real) Real {
	return Real(sincoshSeries(float64(r), parityCos))
}

// Tanh returns sinh(r)/cosh(r).
func Tanh(r Real) Real {
	return Sinh(r) / Cosh(r)
}

// Atanh returns the inverse hyperbolic tangent of r.
// Atanh panics if |r| >= 1.
func Atanh(r Real) Real {
	if !(mu.AbsFloat(float64(r)) < 1) {
		mu.Domainf("reals.Atanh", "argument must be in (-1, 1), got %v", r)
	}
	return Real(atanhSeries(float64(r)))
}

func checkUnit(op string, r Real) {
	if !(mu.AbsFloat(float64(r)) <= 1) {
		mu.Domainf(op, "argument must be in [-1, 1], got %v", r)
	}
}
