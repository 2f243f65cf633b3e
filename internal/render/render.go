// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package render formats numbers of the tower for the console.
package render

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/numtower"
	"github.com/avdva/numtower/cplx"
	"github.com/avdva/numtower/rational"
	"github.com/avdva/numtower/reals"
)

// Mode is the way real parts of numbers are printed.
type Mode int

const (
	// ModePlain prints numbers with their String() methods,
	// or with a fixed number of fraction digits, if the precision is set.
	ModePlain Mode = iota
	// ModeFixed prints reals as fixed-point numbers with 7 fraction digits.
	ModeFixed
	// ModeDecimal prints reals and fractions as decimals rounded to the precision.
	ModeDecimal
)

// DefaultPrecision is the precision used by ModeDecimal, if none is set.
const DefaultPrecision = 10

var modeNames = [...]string{"plain", "fixed", "decimal"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode returns a mode by its name. An empty name means ModePlain.
func ParseMode(name string) (Mode, error) {
	if name == "" {
		return ModePlain, nil
	}
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return ModePlain, errors.Errorf("unknown format %q, expected one of %s", name, strings.Join(modeNames[:], ", "))
}

// Options control the output.
type Options struct {
	Mode Mode
	// Precision is the number of fraction digits. Negative values mean 'not set'.
	Precision int
}

// Number formats n according to the options.
// Naturals and integers are always printed as is.
func Number(n numtower.Number, opts Options) string {
	switch v := n.(type) {
	case reals.Real:
		return Real(v, opts)
	case cplx.Complex:
		if opts.Mode == ModePlain && opts.Precision < 0 {
			return v.String()
		}
		var builder strings.Builder
		builder.WriteString(Real(v.Re, opts))
		im := Real(v.Im, opts)
		// "+Inf" and negative values carry their own sign.
		if !strings.HasPrefix(im, "+") && !strings.HasPrefix(im, "-") {
			builder.WriteByte('+')
		}
		builder.WriteString(im)
		builder.WriteByte('i')
		return builder.String()
	case rational.Rational:
		if opts.Mode == ModeDecimal {
			return v.Decimal(int32(precision(opts))).String()
		}
		return v.String()
	default:
		return n.String()
	}
}

// Real formats a real number according to the options.
func Real(r reals.Real, opts Options) string {
	switch opts.Mode {
	case ModeFixed:
		return r.Fixed().String()
	case ModeDecimal:
		d, err := r.Decimal()
		if err != nil { // NaN or Inf
			return r.String()
		}
		return d.StringFixed(int32(precision(opts)))
	default:
		if opts.Precision < 0 {
			return r.String()
		}
		return strconv.FormatFloat(r.Float64(), 'f', opts.Precision, 64)
	}
}

func precision(opts Options) int {
	if opts.Precision < 0 {
		return DefaultPrecision
	}
	return opts.Precision
}
