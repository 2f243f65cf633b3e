// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numtower

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/numtower/cplx"
	"github.com/avdva/numtower/integer"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
	"github.com/avdva/numtower/reals"
)

const (
	delim        = '.'
	fractionBar  = '/'
	imaginarySfx = 'i'
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) {
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses a number literal into the narrowest set, which can hold it:
//	"12"       natural.Natural
//	"-12", "0" integer.Integer
//	"3/4"      rational.Rational
//	"1.5e3"    reals.Real
//	"2-3.5i"   cplx.Complex
// Constants "pi", "e" and "i" are also recognized.
// Error messages contain the 1-based position of the first invalid symbol.
func Parse(s string) (Number, error) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	offset := len(s) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	n, err := parse(trimmed)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return nil, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return n, nil
}

// MustParse is like Parse, but panics in case of an error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func parse(s string) (Number, error) {
	switch strings.ToLower(s) {
	case "pi", "π":
		return reals.Pi(), nil
	case "e":
		return reals.E(), nil
	case "i":
		return cplx.I, nil
	}
	if s[len(s)-1] == imaginarySfx {
		return parseComplex(s[:len(s)-1])
	}
	if idx := strings.IndexByte(s, fractionBar); idx >= 0 {
		return parseRational(s, idx)
	}
	return parseScalar(s)
}

func parseScalar(s string) (Number, error) {
	signed, isReal, err := scanNumber(s)
	if err != nil {
		return nil, err
	}
	if isReal {
		f, err := parseFloat(s)
		if err != nil {
			return nil, err
		}
		return reals.Real(f), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, newPosError("value out of range", 0)
	}
	if !signed && v > 0 {
		return natural.New(v)
	}
	return integer.Integer(v), nil
}

func parseRational(s string, idx int) (Number, error) {
	num, err := parseIntPart(s[:idx])
	if err != nil {
		return nil, err
	}
	den, err := parseIntPart(s[idx+1:])
	if err != nil {
		return nil, addPosErrorOffset(err, idx+1)
	}
	if den == 0 {
		return nil, newPosError("zero denominator", idx+1)
	}
	return rational.New(num, den)
}

func parseIntPart(s string) (int64, error) {
	_, isReal, err := scanNumber(s)
	if err != nil {
		return 0, err
	}
	if isReal {
		return 0, newPosError("integer expected", 0)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, newPosError("value out of range", 0)
	}
	return v, nil
}

// parseComplex parses "re+im", "re-im" or "im". The imaginary suffix is already removed.
func parseComplex(s string) (Number, error) {
	split := -1
	for i := len(s) - 1; i > 0; i-- {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != 'e' && s[i-1] != 'E' {
			split = i
			break
		}
	}
	var re, im float64
	imStr, imOffset := s, 0
	if split > 0 {
		var err error
		if re, err = parseFloat(s[:split]); err != nil {
			return nil, err
		}
		imStr, imOffset = s[split:], split
	}
	switch imStr {
	case "", "+":
		im = 1
	case "-":
		im = -1
	default:
		var err error
		if im, err = parseFloat(imStr); err != nil {
			return nil, addPosErrorOffset(err, imOffset)
		}
	}
	return cplx.New(re, im), nil
}

func parseFloat(s string) (float64, error) {
	if _, _, err := scanNumber(s); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newPosError("value out of range", 0)
	}
	return f, nil
}

// scanNumber validates a [+-]digits[.digits][e[+-]digits] literal.
// It reports, whether the literal has a sign, and whether it has a fraction or an exponent.
func scanNumber(s string) (signed, isReal bool, err error) {
	var i, digits int
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		signed = true
		i++
	}
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			digits++
		case c == delim:
			if isReal {
				return false, false, newPosError("unexpected delimiter", i)
			}
			isReal = true
		case c == 'e' || c == 'E':
			if digits == 0 {
				return false, false, newPosError("digits expected", i)
			}
			if err := scanExponent(s[i+1:]); err != nil {
				return false, false, addPosErrorOffset(err, i+1)
			}
			return signed, true, nil
		default:
			return false, false, newPosError(fmt.Sprintf("unexpected symbol %q", c), i)
		}
	}
	if digits == 0 {
		return false, false, newPosError("digits expected", len(s))
	}
	return signed, isReal, nil
}

func scanExponent(s string) error {
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		i++
	}
	if i == len(s) {
		return newPosError("exponent expected", i)
	}
	for ; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return newPosError(fmt.Sprintf("unexpected symbol %q in exponent", c), i)
		}
	}
	return nil
}
