// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package numtower ties the nested numeric sets N ⊂ Z ⊂ Q ⊂ R ⊂ C together.
// Every set is implemented by its own package: natural, integer, rational, reals and cplx.
// This package provides the common Number interface, promotion of a number into a wider set,
// literal parsing and a by-name function evaluator.
package numtower

import (
	"fmt"

	"github.com/avdva/numtower/cplx"
	"github.com/avdva/numtower/integer"
	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
	"github.com/avdva/numtower/reals"
)

// Set is a numeric set. Sets are ordered, so that a number of a set
// can be promoted to any set greater than it.
type Set int

const (
	SetUnknown Set = iota
	SetNatural
	SetInteger
	SetRational
	SetReal
	SetComplex
)

var setNames = [...]string{"unknown", "natural", "integer", "rational", "real", "complex"}

// ErrDomain is returned by Apply, if a function was called outside of its domain.
// Use errors.Is(err, ErrDomain).
var ErrDomain = mu.ErrDomain

// DomainError is the panic value of domain violations, like a negative argument under a square root.
type DomainError = mu.DomainError

// Number is implemented by the types of all the sets:
// natural.Natural, integer.Integer, rational.Rational, reals.Real and cplx.Complex.
type Number interface {
	fmt.Stringer
}

func (s Set) String() string {
	if s < 0 || int(s) >= len(setNames) {
		return setNames[SetUnknown]
	}
	return setNames[s]
}

// ParseSet returns a set for its name, as returned by Set.String().
func ParseSet(name string) (Set, error) {
	for i := SetNatural; int(i) < len(setNames); i++ {
		if setNames[i] == name {
			return i, nil
		}
	}
	return SetUnknown, fmt.Errorf("unknown set %q", name)
}

// SetOf returns the set n belongs to, or SetUnknown for types outside of the tower.
func SetOf(n Number) Set {
	switch n.(type) {
	case natural.Natural:
		return SetNatural
	case integer.Integer:
		return SetInteger
	case rational.Rational:
		return SetRational
	case reals.Real:
		return SetReal
	case cplx.Complex:
		return SetComplex
	default:
		return SetUnknown
	}
}

// Natural returns a natural number. Returns an error if n <= 0.
func Natural(n int64) (natural.Natural, error) {
	return natural.New(n)
}

// Integer returns an integer number.
func Integer(z int64) integer.Integer {
	return integer.Integer(z)
}

// Rational returns num/den. Returns an error if den == 0.
func Rational(num, den int64) (rational.Rational, error) {
	return rational.New(num, den)
}

// Real returns a real number.
func Real(f float64) reals.Real {
	return reals.New(f)
}

// Complex returns re + im*i.
func Complex(re, im float64) cplx.Complex {
	return cplx.New(re, im)
}

// Promote converts n into a number of the set 'to'.
// Returns an error if 'to' is narrower than the set of n.
func Promote(n Number, to Set) (Number, error) {
	from := SetOf(n)
	if from == SetUnknown {
		return nil, fmt.Errorf("%T is not a number of the tower", n)
	}
	if to < from || to > SetComplex {
		return nil, fmt.Errorf("can not promote %s number to %s", from, to)
	}
	for ; from < to; from++ {
		n = promoteOnce(n)
	}
	return n, nil
}

func promoteOnce(n Number) Number {
	switch v := n.(type) {
	case natural.Natural:
		return integer.FromNatural(v)
	case integer.Integer:
		return rational.FromInteger(v)
	case rational.Rational:
		return reals.FromRational(v)
	case reals.Real:
		return cplx.FromReal(v)
	default:
		panic(fmt.Sprintf("unexpected type %T", n))
	}
}

// Unify promotes both numbers to the widest of their sets.
func Unify(a, b Number) (Number, Number, error) {
	set := SetOf(a)
	if s := SetOf(b); s > set {
		set = s
	}
	pa, err := Promote(a, set)
	if err != nil {
		return nil, nil, err
	}
	pb, err := Promote(b, set)
	if err != nil {
		return nil, nil, err
	}
	return pa, pb, nil
}

// Equal returns true if both numbers represent the same value,
// after they have been promoted to the same set.
// So, natural 2, integer 2, rational 4/2, real 2.0 and complex 2+0i are all equal.
func Equal(a, b Number) bool {
	pa, pb, err := Unify(a, b)
	if err != nil {
		return false
	}
	switch v := pa.(type) {
	case natural.Natural:
		return v.Eq(pb.(natural.Natural))
	case integer.Integer:
		return v.Eq(pb.(integer.Integer))
	case rational.Rational:
		return v.Eq(pb.(rational.Rational))
	case reals.Real:
		return v.Eq(pb.(reals.Real))
	case cplx.Complex:
		return v.Eq(pb.(cplx.Complex))
	default:
		return false
	}
}
