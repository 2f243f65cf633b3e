// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cplx implements the complex set C as a pair of reals.
// Every analytic function is decomposed into calls to the real engine.
package cplx

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/reals"
)

const (
	// stringPlaces is the number of fraction digits String() prints for each part.
	stringPlaces = 2
)

var (
	// Zero is 0+0i.
	Zero Complex
	// One is 1+0i.
	One = Complex{Re: 1}
	// I is the imaginary unit.
	I = Complex{Im: 1}
)

// Complex is a complex number re + im*i.
type Complex struct {
	Re reals.Real `json:"re"`
	Im reals.Real `json:"im"`
}

// New returns re + im*i.
func New(re, im float64) Complex {
	return Complex{Re: reals.Real(re), Im: reals.Real(im)}
}

// FromReals returns re + im*i.
func FromReals(re, im reals.Real) Complex {
	return Complex{Re: re, Im: im}
}

// FromReal returns r + 0i.
func FromReal(r reals.Real) Complex {
	return Complex{Re: r}
}

// FromComplex128 converts a builtin complex number.
func FromComplex128(c complex128) Complex {
	return New(real(c), imag(c))
}

// Complex128 converts c into a builtin complex number.
func (c Complex) Complex128() complex128 {
	return complex(c.Re.Float64(), c.Im.Float64())
}

// Add returns c + other.
func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

// Sub returns c - other.
func (c Complex) Sub(other Complex) Complex {
	return Complex{Re: c.Re - other.Re, Im: c.Im - other.Im}
}

// Mul returns c * other.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		Re: c.Re*other.Re - c.Im*other.Im,
		Im: c.Re*other.Im + c.Im*other.Re,
	}
}

// Div returns c * (1/other). If other == 0, Div panics.
func (c Complex) Div(other Complex) Complex {
	return c.Mul(other.Reciprocal())
}

// Scale multiplies both parts of c by factor.
func (c Complex) Scale(factor reals.Real) Complex {
	return Complex{Re: c.Re * factor, Im: c.Im * factor}
}

// Mag returns the magnitude |c|.
func (c Complex) Mag() reals.Real {
	return reals.Hypot(c.Re, c.Im)
}

// Arg returns the argument of c as atan2(im, re).
// See reals.Atan2 for the range of the result.
func (c Complex) Arg() reals.Real {
	return reals.Atan2(c.Im, c.Re)
}

// Conjugated returns re - im*i.
func (c Complex) Conjugated() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Reciprocal returns 1/c = (re - im*i)/(re^2 + im^2).
// If c == 0, Reciprocal panics.
func (c Complex) Reciprocal() Complex {
	sq := reals.Square(c.Re) + reals.Square(c.Im)
	if sq == 0 {
		mu.Domainf("cplx.Reciprocal", "reciprocal of zero")
	}
	return Complex{Re: c.Re / sq, Im: -c.Im / sq}
}

// Sin returns sin(a)cosh(b) + cos(a)sinh(b)i for c = a + bi.
func (c Complex) Sin() Complex {
	return Complex{
		Re: reals.Sin(c.Re) * reals.Cosh(c.Im),
		Im: reals.Cos(c.Re) * reals.Sinh(c.Im),
	}
}

// Cos returns cos(a)cosh(b) - sin(a)sinh(b)i for c = a + bi.
func (c Complex) Cos() Complex {
	return Complex{
		Re: reals.Cos(c.Re) * reals.Cosh(c.Im),
		Im: -reals.Sin(c.Re) * reals.Sinh(c.Im),
	}
}

// Tan returns sin(c)/cos(c).
func (c Complex) Tan() Complex {
	return c.Sin().Div(c.Cos())
}

// Exp returns e^a(cos(b) + sin(b)i) for c = a + bi.
func (c Complex) Exp() Complex {
	ea := reals.Exp(c.Re)
	return Complex{Re: ea * reals.Cos(c.Im), Im: ea * reals.Sin(c.Im)}
}

// Eq returns true if both parts are exactly equal.
func (c Complex) Eq(other Complex) bool {
	return c.Re == other.Re && c.Im == other.Im
}

// String returns "( re, imi )" with two digits after the decimal point for each part.
func (c Complex) String() string {
	var builder strings.Builder
	builder.WriteString("( ")
	builder.WriteString(formatPart(c.Re))
	builder.WriteString(", ")
	builder.WriteString(formatPart(c.Im))
	builder.WriteString("i )")
	return builder.String()
}

func formatPart(r reals.Real) string {
	d, err := r.Decimal()
	if err != nil {
		if math.IsNaN(r.Float64()) {
			return "NaN"
		}
		return strconv.FormatFloat(r.Float64(), 'f', -1, 64)
	}
	return d.StringFixed(stringPlaces)
}

// Decimal returns both parts of c as decimals.
// Returns an error, if any of them is not finite.
func (c Complex) Decimal() (re, im decimal.Decimal, err error) {
	if re, err = c.Re.Decimal(); err != nil {
		return
	}
	im, err = c.Im.Decimal()
	return
}
