// Copyright 2020 Aleksandr Demakin. All rights reserved.

package reals

import (
	"math"

	"github.com/avdva/numtower/integer"
	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
)

// Exp returns e^r.
func Exp(r Real) Real {
	return Real(expSigned(float64(r)))
}

// expSigned evaluates the series for |x|, as it loses all precision
// to cancellation for large negative arguments.
func expSigned(x float64) float64 {
	if x < 0 {
		return 1 / expSeries(-x)
	}
	return expSeries(x)
}

// Log returns the natural logarithm of r.
// Log panics if r <= 0.
func Log(r Real) Real {
	x := float64(r)
	if !(x > 0) {
		mu.Domainf("reals.Log", "argument must be positive, got %v", r)
	}
	return Real(log(x))
}

func log(x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return x
	case x < 1:
		return -log(1 / x)
	case x <= logReduceBase:
		return logNewton(x)
	}
	var count int
	for x >= logReduceBase {
		x /= logReduceBase
		count++
	}
	return float64(count)*ln100 + logNewton(x)
}

// Log2 returns the binary logarithm of r.
// Log2 panics if r <= 0.
func Log2(r Real) Real {
	return Log(r) / Real(ln2)
}

// Log10 returns the decimal logarithm of r.
// Log10 panics if r <= 0.
func Log10(r Real) Real {
	return Log(r) / Real(ln10)
}

// Pow returns base^exp as exp(log(base)*exp).
// 0^x is 0 for any x, including 0; x^0 is 1 for non-zero x.
// If either base or exp is negative, exp is truncated to an integer,
// and the result is computed by square-and-multiply.
func Pow(base, exp Real) Real {
	switch {
	case base == 0:
		return Zero
	case exp == 0:
		return One
	case math.IsNaN(float64(exp)):
		return exp
	case base < 0 || exp < 0:
		return Real(mu.PowFloat(float64(base), intExp(float64(exp))))
	}
	return Real(expSigned(log(float64(base)) * float64(exp)))
}

// PowRational returns base^exp for a fractional exponent.
// See Pow for negative arguments.
func PowRational(base Real, exp rational.Rational) Real {
	if base < 0 || exp.Sign() < 0 {
		return Real(mu.PowFloat(float64(base), intExp(exp.Float64())))
	}
	return Pow(base, FromRational(exp))
}

// PowInteger returns base^exp by square-and-multiply.
func PowInteger(base Real, exp integer.Integer) Real {
	if e := int(exp); int64(e) == int64(exp) {
		return Real(mu.PowFloat(float64(base), e))
	}
	return Real(mu.PowFloat(float64(base), intExp(float64(exp))))
}

// intExp truncates x to an int exponent.
// Values beyond the int range are even integers, they are clamped to even bounds.
func intExp(x float64) int {
	switch {
	case x >= math.MaxInt:
		return math.MaxInt - 1
	case x <= math.MinInt:
		return math.MinInt
	}
	return int(x)
}

// PowNatural returns base^exp by square-and-multiply.
func PowNatural(base Real, exp natural.Natural) Real {
	return PowInteger(base, integer.FromNatural(exp))
}

// Sqrt returns the square root of r.
// Sqrt panics if r < 0.
func Sqrt(r Real) Real {
	if !(r >= 0) {
		mu.Domainf("reals.Sqrt", "negative argument %v", r)
	}
	return Pow(r, 0.5)
}

// Curt returns the cube root of r. Negative arguments yield negative roots.
func Curt(r Real) Real {
	return Sign(r) * Pow(Abs(r), 1.0/3)
}

// Ithrt returns the n-th root of r.
// Ithrt panics for even n and negative r.
func Ithrt(r Real, n natural.Natural) Real {
	if n.IsEven() && r < 0 {
		mu.Domainf("reals.Ithrt", "even root %d of negative argument %v", n.Int64(), r)
	}
	return Sign(r) * Pow(Abs(r), 1/FromNatural(n))
}

// Hypot returns sqrt(a*a + b*b).
func Hypot(a, b Real) Real {
	return Sqrt(Square(a) + Square(b))
}
