// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package reals implements the real set R on top of float64.
// Transcendental functions are evaluated by fixed-length power series and Newton iterations,
// so that every result depends only on float64 arithmetic and the package's own code.
package reals

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/numtower/integer"
	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
)

const (
	Zero = Real(0)
	One  = Real(1)

	// above this value every float64 is an integer.
	maxFractional = 1 << 52
)

var (
	errBadFloat = fmt.Errorf("bad float number")
)

// Real is a double precision real number.
type Real float64

// E returns Euler's number, computed once as Σ 1/n!.
func E() Real {
	return Real(e)
}

// Pi returns π, computed once by Machin's formula π = 4(5atan(1/7) + 2atan(3/79)).
func Pi() Real {
	return Real(pi)
}

// New returns f as a real number.
func New(f float64) Real {
	return Real(f)
}

// FromInteger converts an integer into a real.
func FromInteger(z integer.Integer) Real {
	return Real(z.Int64())
}

// FromNatural converts a natural number into a real.
func FromNatural(n natural.Natural) Real {
	return Real(n.Int64())
}

// FromRational converts a fraction into a real.
func FromRational(q rational.Rational) Real {
	return Real(q.Float64())
}

// FromFixed converts a fixed-point value into a real.
func FromFixed(f fixed.Fixed) Real {
	return Real(f.Float())
}

// FromDecimal converts a decimal into a real. The result may be inexact.
func FromDecimal(d decimal.Decimal) Real {
	f, _ := d.Float64()
	return Real(f)
}

// FromString parses a decimal or an exponent notation of a real number.
func FromString(s string) (Real, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Zero, err
	}
	return Real(f), nil
}

// Float64 returns r as a float64.
func (r Real) Float64() float64 {
	return float64(r)
}

// IsFinite returns false for NaN and infinities.
func (r Real) IsFinite() bool {
	return !math.IsNaN(float64(r)) && !math.IsInf(float64(r), 0)
}

// Fixed converts r into a fixed-point value with 7 decimal places.
func (r Real) Fixed() fixed.Fixed {
	return fixed.NewF(float64(r))
}

// Decimal converts r into a decimal.
// Returns an error for NaN and infinities.
func (r Real) Decimal() (decimal.Decimal, error) {
	if !r.IsFinite() {
		return decimal.Zero, errBadFloat
	}
	return decimal.NewFromFloat(float64(r)), nil
}

// Add returns r + other.
func (r Real) Add(other Real) Real {
	return r + other
}

// Sub returns r - other.
func (r Real) Sub(other Real) Real {
	return r - other
}

// Mul returns r * other.
func (r Real) Mul(other Real) Real {
	return r * other
}

// Div returns r / other. If other == 0, Div panics.
func (r Real) Div(other Real) Real {
	if other == 0 {
		mu.Domainf("reals.Div", "division by zero")
	}
	return r / other
}

// Neg returns -r.
func (r Real) Neg() Real {
	return -r
}

// Eq returns true if both numbers are exactly equal.
func (r Real) Eq(other Real) bool {
	return r == other
}

// Cmp compares two numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (r Real) Cmp(other Real) int {
	switch {
	case r > other:
		return 1
	case r < other:
		return -1
	default:
		return 0
	}
}

// String returns the shortest decimal representation, which parses back into r.
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

// MarshalJSON marshals r as a json number.
// NaN and infinities can not be represented in json, and an error is returned for them.
func (r Real) MarshalJSON() ([]byte, error) {
	if !r.IsFinite() {
		return nil, errBadFloat
	}
	return []byte(r.String()), nil
}

// UnmarshalJSON unmarshals a number, or a string with a number into r.
func (r *Real) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*r = value
	return nil
}

// Sign returns -1 for negative numbers, and 1 otherwise, including zero.
func Sign(r Real) Real {
	return Real(sign(float64(r)))
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Abs returns |r|.
func Abs(r Real) Real {
	return Real(mu.AbsFloat(float64(r)))
}

// Max returns the greatest of the numbers, or a if they are equal.
func Max(a, b Real) Real {
	if a >= b {
		return a
	}
	return b
}

// Min returns the smallest of the numbers, or b if they are equal.
func Min(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

// Fmod returns the remainder of a/b by subtracting |b| from |a| while |a| >= |b|.
// The result is negative if the signs of a and b differ.
// Fmod panics if b == 0, or if the subtraction can make no progress,
// like for a non-finite a, or for an a much greater than b.
func Fmod(a, b Real) Real {
	return Real(fmod(float64(a), float64(b)))
}

func fmod(a, b float64) float64 {
	if b == 0 {
		mu.Domainf("reals.Fmod", "division by zero")
	}
	s := 1.0
	if sign(a) != sign(b) {
		s = -1
	}
	a, b = mu.AbsFloat(a), mu.AbsFloat(b)
	for a >= b {
		next := a - b
		if next == a {
			mu.Domainf("reals.Fmod", "dividend %v is too large for divisor %v", a, b)
		}
		a = next
	}
	return s * a
}

// IntPart truncates r towards zero.
func IntPart(r Real) Real {
	return Real(intPart(float64(r)))
}

func intPart(x float64) float64 {
	if math.IsNaN(x) || mu.AbsFloat(x) >= maxFractional {
		return x
	}
	return float64(int64(x))
}

// DecPart returns r - IntPart(r).
func DecPart(r Real) Real {
	return r - IntPart(r)
}

// Ceil returns the least integer value greater than or equal to r.
func Ceil(r Real) Real {
	ip := IntPart(r)
	if Abs(r-ip) == 0 || r < 0 {
		return ip
	}
	return ip + 1
}

// Floor returns the greatest integer value less than or equal to r.
func Floor(r Real) Real {
	ip := IntPart(r)
	if Abs(r-ip) == 0 || r >= 0 {
		return ip
	}
	return ip - 1
}

// Round returns the nearest integer, rounding half away from zero.
func Round(r Real) Real {
	dp := Abs(DecPart(r))
	switch {
	case r == 0:
		return Zero
	case dp == 0:
		return IntPart(r)
	case r > 0 && dp >= 0.5, r < 0 && dp < 0.5:
		return Ceil(r)
	default:
		return Floor(r)
	}
}

// Square returns r*r.
func Square(r Real) Real {
	return r * r
}

// Factorial returns z! as a real number.
// Returns 0 for a negative z, and +Inf if z! does not fit a float64.
func Factorial(z integer.Integer) Real {
	if z > mu.MaxFactorialFloat {
		return Real(math.Inf(1))
	}
	return Real(mu.FactorialFloat(int(z)))
}

// ToDegrees converts radians into degrees.
func ToDegrees(r Real) Real {
	return r * 180 / Real(pi)
}

// ToRadians converts degrees into radians.
func ToRadians(r Real) Real {
	return r * Real(pi) / 180
}
