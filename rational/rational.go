// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package rational implements the rational set Q as fractions of two machine-width integers.
package rational

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/numtower/integer"
	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/natural"
)

var (
	// Zero is 0/1.
	Zero Rational
	// One is 1/1.
	One = Rational{num: 1}

	errZeroDenominator = fmt.Errorf("denominator must not be zero")
)

// Rational is a fraction num/den.
// The denominator is stored minus one, so that the zero value is 0/1.
// Results of arithmetic operations are not reduced, call Reduce() for that.
// Operations, which overflow an int64 numerator or denominator, panic with a domain error.
type Rational struct {
	num  int64
	den1 int64
}

func fromNumDen(num, den int64) Rational {
	return Rational{num: num, den1: den - 1}
}

// New returns num/den.
// Returns an error if den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Zero, errZeroDenominator
	}
	return fromNumDen(num, den), nil
}

// MustNew is like New, but panics if den == 0.
func MustNew(num, den int64) Rational {
	q, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return q
}

// FromInteger returns z/1.
func FromInteger(z integer.Integer) Rational {
	return fromNumDen(z.Int64(), 1)
}

// FromNatural returns n/1.
func FromNatural(n natural.Natural) Rational {
	return fromNumDen(n.Int64(), 1)
}

// FromString parses strings like "3/4", "-3/4" or "5".
func FromString(s string) (Rational, error) {
	numStr, denStr, found := strings.Cut(strings.TrimSpace(s), "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("bad numerator: %w", err)
	}
	if !found {
		return fromNumDen(num, 1), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("bad denominator: %w", err)
	}
	return New(num, den)
}

// MustFromString is like FromString, but panics in case of an error.
func MustFromString(s string) Rational {
	q, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return q
}

// Num returns the numerator.
func (q Rational) Num() int64 {
	return q.num
}

// Den returns the denominator.
func (q Rational) Den() int64 {
	return q.den1 + 1
}

// Add returns q + other.
func (q Rational) Add(other Rational) Rational {
	const op = "rational.Add"
	d1, d2 := q.Den(), other.Den()
	return fromNumDen(mu.Add(op, mu.Mul(op, q.num, d2), mu.Mul(op, other.num, d1)), mu.Mul(op, d1, d2))
}

// Sub returns q - other.
func (q Rational) Sub(other Rational) Rational {
	const op = "rational.Sub"
	d1, d2 := q.Den(), other.Den()
	return fromNumDen(mu.Sub(op, mu.Mul(op, q.num, d2), mu.Mul(op, other.num, d1)), mu.Mul(op, d1, d2))
}

// Mul returns q * other.
func (q Rational) Mul(other Rational) Rational {
	const op = "rational.Mul"
	return fromNumDen(mu.Mul(op, q.num, other.num), mu.Mul(op, q.Den(), other.Den()))
}

// Div returns q / other. If other == 0, Div panics.
func (q Rational) Div(other Rational) Rational {
	const op = "rational.Div"
	if other.num == 0 {
		mu.Domainf(op, "division by zero")
	}
	return fromNumDen(mu.Mul(op, q.num, other.Den()), mu.Mul(op, q.Den(), other.num))
}

// Neg returns -q.
func (q Rational) Neg() Rational {
	return fromNumDen(mu.Sub("rational.Neg", 0, q.num), q.Den())
}

// Reduce returns q in lowest terms, with the sign moved to the numerator.
func (q Rational) Reduce() Rational {
	num, den := q.num, q.Den()
	if den < 0 {
		num, den = mu.Sub("rational.Reduce", 0, num), mu.Sub("rational.Reduce", 0, den)
	}
	d := mu.GCD(num, den)
	return fromNumDen(num/d, den/d)
}

// Abs returns |q|.
func (q Rational) Abs() Rational {
	num, den := q.num, q.Den()
	if num < 0 {
		num = mu.Sub("rational.Abs", 0, num)
	}
	if den < 0 {
		den = mu.Sub("rational.Abs", 0, den)
	}
	return fromNumDen(num, den)
}

// Pow returns q^exp. If exp < 0, Pow panics.
func (q Rational) Pow(exp integer.Integer) Rational {
	if exp < 0 {
		mu.Domainf("rational.Pow", "exponent must be >= 0, got %d", exp)
	}
	return fromNumDen(mu.Pow("rational.Pow", q.num, exp.Int64()), mu.Pow("rational.Pow", q.Den(), exp.Int64()))
}

// IsProper returns true if |num| <= |den|.
func (q Rational) IsProper() bool {
	return mu.AbsInt64(q.num) <= mu.AbsInt64(q.Den())
}

// Sign returns -1 if q < 0, 0 if q = 0, 1 if q > 0.
func (q Rational) Sign() int {
	if q.num == 0 {
		return 0
	}
	if mu.SameSign(q.num, q.Den()) {
		return 1
	}
	return -1
}

// Float64 returns num/den as a float64 value.
func (q Rational) Float64() float64 {
	return float64(q.num) / float64(q.Den())
}

// Decimal returns q as a decimal number, rounded to 'places' digits after the decimal point.
func (q Rational) Decimal(places int32) decimal.Decimal {
	return decimal.NewFromInt(q.num).DivRound(decimal.NewFromInt(q.Den()), places)
}

// Eq returns true if both fractions represent the same number, like 1/2 and 2/4.
func (q Rational) Eq(other Rational) bool {
	return mu.CmpProducts(q.num, other.Den(), other.num, q.Den()) == 0
}

// Cmp compares two fractions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (q Rational) Cmp(other Rational) int {
	return mu.CmpProducts(q.num, other.Den(), other.num, q.Den()) * mu.Int64Sign(q.Den()) * mu.Int64Sign(other.Den())
}

// String returns a "num/den" representation of q.
func (q Rational) String() string {
	return strconv.FormatInt(q.num, 10) + "/" + strconv.FormatInt(q.Den(), 10)
}

// MarshalJSON marshals q as a "num/den" string.
func (q Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(q.String())), nil
}

// UnmarshalJSON unmarshals a "num/den" string, or an integer number into q.
func (q *Rational) UnmarshalJSON(data []byte) error {
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
	*q = value
	return nil
}
